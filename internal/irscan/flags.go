// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package irscan

// CompileFlag formats a -D define binding macro to name. No escaping is
// applied; name must already be a valid macro value token.
func CompileFlag(macro, name string) string {
	return "-D" + macro + "=" + name
}
