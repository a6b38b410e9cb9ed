package handler

import (
	"log/slog"
	"net/http"

	"catalog/internal/delivery/http/middleware"
	"catalog/internal/delivery/http/response"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CourseHandlerParams holds dependencies for CourseHandler, injected by Fx.
type CourseHandlerParams struct {
	fx.In

	CourseUC       usecase.CourseUsecase
	AuthMiddleware *middleware.AuthMiddleware
	Logger         *slog.Logger
}

// CourseHandler serves /api/courses. Mutations run the stages validate,
// authenticate, load and authorize, execute in that order.
type CourseHandler struct {
	courseUC usecase.CourseUsecase
	auth     *middleware.AuthMiddleware
	logger   *slog.Logger
}

// NewCourseHandler is the constructor for CourseHandler.
func NewCourseHandler(params CourseHandlerParams) *CourseHandler {
	return &CourseHandler{
		courseUC: params.CourseUC,
		auth:     params.AuthMiddleware,
		logger:   params.Logger,
	}
}

// List handles GET /api/courses.
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.courseUC.ListCourses(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]*CourseResponse, 0, len(courses))
	for _, course := range courses {
		out = append(out, toCourseResponse(course))
	}

	return response.JSON(c, map[string][]*CourseResponse{"courses": out})
}

// Get handles GET /api/courses/:id.
func (h *CourseHandler) Get(c echo.Context) error {
	courseID, err := courseIDParam(c)
	if err != nil {
		return err
	}

	course, err := h.courseUC.GetCourse(c.Request().Context(), courseID)
	if err != nil {
		return err
	}

	return response.JSON(c, map[string]*CourseResponse{"course": toCourseResponse(course)})
}

// QRCode handles GET /api/courses/:id/qrcode.
func (h *CourseHandler) QRCode(c echo.Context) error {
	courseID, err := courseIDParam(c)
	if err != nil {
		return err
	}

	png, err := h.courseUC.CourseQRCode(c.Request().Context(), courseID)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Create handles POST /api/courses. The owner is the authenticated identity.
func (h *CourseHandler) Create(c echo.Context) error {
	var req CourseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	actor, err := h.auth.Identify(c)
	if err != nil {
		return err
	}

	course, err := h.courseUC.CreateCourse(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return err
	}

	return response.Created(c, "/api/courses/"+course.ID.String())
}

// Update handles PUT /api/courses/:id.
func (h *CourseHandler) Update(c echo.Context) error {
	var req CourseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	actor, err := h.auth.Identify(c)
	if err != nil {
		return err
	}

	courseID, err := courseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.courseUC.UpdateCourse(c.Request().Context(), actor, courseID, req.toInput()); err != nil {
		return err
	}

	return response.NoContent(c)
}

// Delete handles DELETE /api/courses/:id. It runs behind AuthMiddleware.Authenticate.
func (h *CourseHandler) Delete(c echo.Context) error {
	actor, err := h.auth.Identify(c)
	if err != nil {
		return err
	}

	courseID, err := courseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.courseUC.DeleteCourse(c.Request().Context(), actor, courseID); err != nil {
		return err
	}

	return response.NoContent(c)
}

// courseIDParam parses :id. A malformed id cannot name a course, so it is a 404.
func courseIDParam(c echo.Context) (uuid.UUID, error) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrCourseNotFound
	}

	return courseID, nil
}
