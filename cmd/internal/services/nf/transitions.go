package nf

import "github.com/dalmoeng/custos-go/cmd/internal/services/apierrors"

// Invoice lifecycle statuses, in Portuguese as persisted.
const (
	StatusPendente   = "Pendente"
	StatusValidada   = "Validada"
	StatusRejeitada  = "Rejeitada"
	StatusProcessada = "Processada"
)

// legalTransitions is the invoice state machine. Rejeitada and Processada
// are terminal.
var legalTransitions = map[string][]string{
	StatusPendente: {StatusValidada, StatusRejeitada},
	StatusValidada: {StatusProcessada},
}

// CheckTransition returns a ValidationError when moving an invoice from
// current to target is not allowed.
func CheckTransition(current, target string) error {
	for _, allowed := range legalTransitions[current] {
		if allowed == target {
			return nil
		}
	}
	return apierrors.NewValidationError("transição de status inválida: %s → %s", current, target)
}

// CountsAsEvidence reports whether an invoice in the given status
// contributes to realized spend.
func CountsAsEvidence(status string) bool {
	return status == StatusValidada || status == StatusProcessada
}
