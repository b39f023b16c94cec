package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/smartretail/internal/adapters/http/handlers"
	"github.com/rafaelleal24/smartretail/internal/core/dto"
	"github.com/rafaelleal24/smartretail/internal/core/service"
	"github.com/rafaelleal24/smartretail/internal/core/serviceerrors"
)

type SessionController struct {
	sessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

// Current godoc
// @Summary     Current screen
// @Description Returns the screen mode and the logged-in customer, if any
// @Tags        session
// @Produce     json
// @Success     200 {object} dto.SessionView
// @Router      /api/v1/session [get]
func (sc *SessionController) Current(c *gin.Context) {
	c.JSON(http.StatusOK, sc.sessionService.Current())
}

// Login godoc
// @Summary     Log in
// @Description Matches name and email exactly against the customer list
// @Tags        session
// @Accept      json
// @Produce     json
// @Param       request body     dto.LoginRequest true "Credentials"
// @Success     200     {object} dto.SessionView
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     401     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Router      /api/v1/session/login [post]
func (sc *SessionController) Login(c *gin.Context) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	view, err := sc.sessionService.Login(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// BeginSignup godoc
// @Summary     Open the signup form
// @Tags        session
// @Produce     json
// @Success     200 {object} dto.SessionView
// @Failure     409 {object} handlers.ErrorResponse
// @Router      /api/v1/session/signup/start [post]
func (sc *SessionController) BeginSignup(c *gin.Context) {
	view, err := sc.sessionService.BeginSignup(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CancelSignup godoc
// @Summary     Close the signup form
// @Tags        session
// @Produce     json
// @Success     200 {object} dto.SessionView
// @Failure     409 {object} handlers.ErrorResponse
// @Router      /api/v1/session/signup/cancel [post]
func (sc *SessionController) CancelSignup(c *gin.Context) {
	view, err := sc.sessionService.CancelSignup(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Signup godoc
// @Summary     Create an account
// @Description Registers a customer with zero balances and returns to the login screen
// @Tags        session
// @Accept      json
// @Produce     json
// @Param       request body     dto.SignupRequest true "Signup form"
// @Success     201     {object} dto.CustomerView
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Router      /api/v1/session/signup [post]
func (sc *SessionController) Signup(c *gin.Context) {
	var request dto.SignupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	customer, err := sc.sessionService.Signup(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// Logout godoc
// @Summary     Log out
// @Tags        session
// @Produce     json
// @Success     200 {object} dto.SessionView
// @Failure     409 {object} handlers.ErrorResponse
// @Router      /api/v1/session/logout [post]
func (sc *SessionController) Logout(c *gin.Context) {
	view, err := sc.sessionService.Logout(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
