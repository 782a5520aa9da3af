package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"uk.co.dudmesh.apiary/internal/model"
)

type MgmtService interface {
	DeleteMessages(session *model.Session, ids []model.MessageID) (int, error)
	EditMessage(session *model.Session, id model.MessageID, params *model.EditParams) error
}

type AccessGate interface {
	AuthorizeRequest(session *model.Session) bool
}

func Mgmt(gate AccessGate, mgmtService MgmtService) echo.HandlerFunc {
	return func(c echo.Context) error {
		request := &model.MgmtRequest{}
		if err := c.Bind(request); err != nil {
			return err
		}

		session := sessionFrom(c)
		if !gate.AuthorizeRequest(session) {
			return c.String(http.StatusForbidden, "You need administrative access to use this feature.")
		}

		targets := request.Targets()
		switch request.Action {
		case "delete":
			count, err := mgmtService.DeleteMessages(session, targets)
			if err != nil {
				return err
			}
			return c.String(http.StatusOK, fmt.Sprintf("Removed %d emails from archives.", count))

		case "edit":
			if len(targets) == 0 {
				return c.String(http.StatusNotFound, "Email not found!")
			}
			err := mgmtService.EditMessage(session, targets[0], request.EditParams())
			var validationError *model.ValidationError
			switch {
			case errors.As(err, &validationError):
				return c.String(http.StatusBadRequest, validationError.Error())
			case errors.Is(err, model.ErrorMessageNotFound):
				return c.String(http.StatusNotFound, "Email not found!")
			case err != nil:
				return err
			}
			return c.String(http.StatusOK, "Email successfully saved")

		default:
			return c.String(http.StatusNotFound, "Unknown mgmt command requested")
		}
	}
}
