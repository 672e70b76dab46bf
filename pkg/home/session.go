package home

import (
	"fmt"

	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/common"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/models"
	"go.uber.org/zap"
)

// login validates against the static credential table. Unknown user and
// wrong password are deliberately indistinguishable to the caller.
func (h *Home) login(username, password string) (models.Session, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameDashCore,
		zap.String(common.LoggerFieldDashCategory, common.LoggerCategorySession),
	)

	cred, ok := h.creds[username]
	if !ok || cred.Password != password {
		logger.Info("Rejected login", zap.String("username", username))
		return models.Session{}, fmt.Errorf("login %q: %w", username, ErrInvalidCredentials)
	}

	h.session = models.Session{
		Username: username,
		Role:     cred.Role,
	}

	// Role is recorded for display and future gating; nothing checks it
	// before mutations today.
	logger.Info("Logged in",
		zap.String("username", username),
		zap.String("role", string(cred.Role)))

	return h.session, nil
}

func (h *Home) currentSession() models.Session {
	return h.session
}

type ISessionImpl struct {
	home *Home
}

func (is *ISessionImpl) Login(username, password string) (models.Session, error) {
	return is.home.login(username, password)
}

func (is *ISessionImpl) Current() models.Session {
	return is.home.currentSession()
}

func (h *Home) GetISession() ISession {
	return &ISessionImpl{home: h}
}
