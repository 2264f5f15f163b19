package handlers

import (
	"github.com/HebertyRichards/API-web-barber/internal/httperr"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeError traduz a taxonomia de erros para HTTP: validação em 400,
// não-encontrado em 404 e o resto em 500 genérico, com a causa apenas no log.
func writeError(c *gin.Context, log *zap.Logger, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		switch be.Kind {
		case httperr.KindNotFound:
			httperr.NotFound(c, be.Code, be.Message)
		default:
			httperr.BadRequest(c, be.Code, be.Message)
		}
		return
	}

	log.Error("internal error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	httperr.Internal(c, "internal_error", "Erro interno do servidor.")
}
