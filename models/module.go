// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package models

// Module is a feature module of the application (base, audit, courts).
// Modules are seeded once and switched on or off by administrators;
// the data-access layer only reads the Active flag.
type Module struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Subname     string `json:"subname"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Installed   bool   `json:"installed"`
	Active      bool   `json:"active"`
}

// ToRecord converts the module into a column map ready to be written.
func (m Module) ToRecord() map[string]any {
	return map[string]any{
		"code":        m.Code,
		"name":        m.Name,
		"subname":     m.Subname,
		"description": m.Description,
		"icon":        m.Icon,
		"installed":   m.Installed,
		"active":      m.Active,
	}
}

// DefaultModules is the set of modules seeded into a fresh database.
// Only base is active out of the box.
var DefaultModules = []Module{
	{
		Code:        "base",
		Name:        "Base",
		Subname:     "Parametrización",
		Description: "Contiene las funcionalidades base del sistema",
		Icon:        "/assets/images/module/icons/base.png",
		Installed:   true,
		Active:      true,
	},
	{
		Code:        AuditModuleCode,
		Name:        "Auditoría",
		Subname:     "Registro de cambios",
		Description: "Funcionalidades que permiten del registro de logs al realizar operaciones de creación o actualización en la base de datos",
		Icon:        "/assets/images/module/icons/audit.png",
	},
	{
		Code:        "courts",
		Name:        "Canchas Deportivas",
		Subname:     "Gestión de canchas deportivas",
		Description: "Funcionalidades que permiten la gestión de canchas deportivas y sus horarios",
		Icon:        "/assets/images/module/icons/courts.png",
	},
}
