package analyzing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de análise de vendas
var (
	// ErrEmptyInput indica que não há registros de venda para agregar
	ErrEmptyInput = errors.New("no sale records to aggregate")
)

// Etapas do pipeline em que um AnalysisError pode ocorrer
const (
	StageFetch     = "fetch"
	StageSummarize = "summarize"
)

// AnalysisError é um erro com contexto adicional sobre a etapa que falhou
type AnalysisError struct {
	Err     error  // Erro base
	Stage   string // Etapa do pipeline
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s: %s", e.Stage, e.Err.Error(), e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError cria um novo AnalysisError
func NewAnalysisError(err error, stage string, details string) *AnalysisError {
	return &AnalysisError{
		Err:     err,
		Stage:   stage,
		Details: details,
	}
}
