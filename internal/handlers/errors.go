package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

const slotTakenMessage = "Horário não está mais disponível, escolha outro."

var businessMessages = map[string]string{
	domain.CodeConfiguration:        "Expediente do profissional está mal configurado.",
	domain.CodeSlotConflict:         slotTakenMessage,
	domain.CodeSlotBeingBooked:      slotTakenMessage,
	domain.CodeInvalidTransition:    "Esta alteração de status não é permitida.",
	domain.CodeNotFound:             "Registro não encontrado.",
	domain.CodeProfessionalNotFound: "Profissional não encontrado.",
	domain.CodeAppointmentNotFound:  "Agendamento não encontrado.",
	domain.CodeServiceNotFound:      "Serviço não encontrado.",
	domain.CodeInvalidDateOrTime:    "Data ou hora inválida.",
	domain.CodePastSlot:             "Não é possível agendar em um horário que já passou.",
	domain.CodeOutsideWorkingHours:  "Fora do horário de atendimento.",
	domain.CodeInvalidRequest:       "Dados inválidos.",
}

// writeBusinessError maps use case errors to HTTP. Anything that is not a
// BusinessError is logged on the context and reported as 500.
func writeBusinessError(c *gin.Context, err error) {
	if errors.Is(err, media.ErrUnsupportedImage) {
		httperr.BadRequest(c, "unsupported_image", "Envie uma imagem JPEG ou PNG.")
		return
	}

	code := httperr.CodeOf(err)
	if code == "" {
		_ = c.Error(err)
		httperr.Internal(c, "internal_error", "Erro interno, tente novamente.")
		return
	}

	msg, ok := businessMessages[code]
	if !ok {
		msg = "Operação não permitida."
	}

	switch {
	case domain.IsNotFound(err):
		httperr.NotFound(c, code, msg)
	case code == domain.CodeSlotConflict, code == domain.CodeSlotBeingBooked, code == domain.CodeInvalidTransition:
		httperr.Conflict(c, code, msg)
	case code == domain.CodeConfiguration:
		httperr.Unprocessable(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}

type validationResponse struct {
	Code    string                  `json:"error_code"`
	Message string                  `json:"message"`
	Fields  []validators.FieldError `json:"fields,omitempty"`
}

func writeBindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, validationResponse{
		Code:    domain.CodeInvalidRequest,
		Message: businessMessages[domain.CodeInvalidRequest],
		Fields:  validators.FieldErrors(err),
	})
}
