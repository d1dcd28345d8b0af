// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_String(t *testing.T) {
	tests := []struct {
		name string
		info AppBuildInfo
		want string
	}{
		{name: "all set", info: NewAppBuildInfo("1.4.0", "2026-10-01", "abc123"), want: "1.4.0 (abc123, 2026-10-01)"},
		{name: "nothing set", info: NewAppBuildInfo("", "", ""), want: "N/A (N/A, N/A)"},
		{name: "version only", info: NewAppBuildInfo("1.4.0", "", ""), want: "1.4.0 (N/A, N/A)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestAppBuildInfo_Accessors(t *testing.T) {
	info := NewAppBuildInfo("v", "d", "c")
	assert.Equal(t, "v", info.BuildVersion())
	assert.Equal(t, "d", info.BuildDate())
	assert.Equal(t, "c", info.BuildCommit())
}
