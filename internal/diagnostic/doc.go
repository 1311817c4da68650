// Package diagnostic collects structured errors, warnings, and notes found
// while checking deserializer definition files.
//
// Each Diagnostic carries a stable code, the definition and field it is
// about, and optional suggestions such as the closest known name.
package diagnostic
