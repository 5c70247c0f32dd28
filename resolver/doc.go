// Package resolver implements the canonical-name convention used to map
// a handler or command type to the string name stored on a command and
// looked up in a registry.Registry.
//
// Resolution is deterministic and cached per concrete type: an explicit
// override always wins, otherwise a trailing "Command" suffix is
// stripped, CamelCase is converted to snake_case, and the result is
// lowercased. For example, a value of type SendEmailCommand resolves to
// "send_email" absent an override.
package resolver
