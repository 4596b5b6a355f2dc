package game

import "github.com/atotto/clipboard"

// CopyReport puts the rendered round report on the system clipboard so
// players can paste their run somewhere.
func CopyReport(report string) error {
	return clipboard.WriteAll(report)
}
