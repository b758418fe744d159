package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	reportIDLength = 8
	reportIDPrefix = "RPT-"
)

// GenerateReportID gera um identificador curto para cada relatório emitido
func GenerateReportID() (string, error) {
	id, err := gonanoid.Generate(characters, reportIDLength)
	if err != nil {
		return "", err
	}
	return reportIDPrefix + id, nil
}
