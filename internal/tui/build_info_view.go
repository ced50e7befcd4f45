// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/avidalm/petkeeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Aplicación: PetKeeper\n")
	b.WriteString("Versión: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Fecha: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return renderPage("INFORMACIÓN DEL PROGRAMA", b.String(), "esc: volver")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
