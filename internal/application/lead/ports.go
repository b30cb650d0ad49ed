package lead

import "github.com/futurestec/crm-leads-api/internal/domain/entity"

// InterestNotifier notifica a un destinatario fijo cuando un lead pasa a interesado.
// El envío bloquea; el fallo no revierte el flag ya persistido.
type InterestNotifier interface {
	NotifyInterested(lead *entity.Lead) error
}
