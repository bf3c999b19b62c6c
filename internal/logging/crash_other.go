//go:build !linux && !darwin

package logging

// coreDumpDiagnostics has no resource-limit concept to report off
// linux/darwin.
func coreDumpDiagnostics() map[string]string {
	return nil
}
