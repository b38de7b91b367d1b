// Package hcl_adapter reads class catalogs written in HCL and translates them
// into the format-agnostic config.Model.
//
// A catalog is a set of `class` blocks plus at most one `diagram` block:
//
//	diagram {
//	  root = "User"
//	  style {
//	    font_size = 12
//	  }
//	}
//
//	class "Admin" {
//	  inherits   = "User"
//	  attributes = formatlist("%s: %s", ["level", "scope"], ["int", "string"])
//	  methods    = ["grant(role: string): void"]
//	  related    = ["AuditLog"]
//	}
package hcl_adapter
