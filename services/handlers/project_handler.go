package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hmosawi/folio_api/dto"
	"github.com/hmosawi/folio_api/shared"
)

type ProjectHandler struct {
	projectSvc ProjectServiceInterface
}

func NewProjectHandler(projectSvc ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{projectSvc: projectSvc}
}

// @Summary List published projects
// @Tags projects
// @Produce json
// @Success 200 {object} shared.Response{data=[]model.Project}
// @Router /api/v1/projects [get]
func (h *ProjectHandler) ListPublished(c *fiber.Ctx) error {
	projects, err := h.projectSvc.ListPublished()
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, projects)
}

// @Summary Get a published project by slug
// @Tags projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} shared.Response{data=model.Project}
// @Failure 404 {object} shared.Response
// @Router /api/v1/projects/{slug} [get]
func (h *ProjectHandler) GetBySlug(c *fiber.Ctx) error {
	project, err := h.projectSvc.GetBySlug(c.Params("slug"))
	if err != nil {
		return err
	}

	if !project.IsPublished {
		return shared.ResponseNotFound(c, "")
	}

	return shared.ResponseOK(c, project)
}

// @Summary List all projects
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=[]model.Project}
// @Router /api/v1/admin/projects [get]
func (h *ProjectHandler) ListAll(c *fiber.Ctx) error {
	projects, err := h.projectSvc.ListAll()
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, projects)
}

// @Summary Get a project
// @Tags admin
// @Produce json
// @Security Bearer
// @Param id path string true "Project ID"
// @Success 200 {object} shared.Response{data=model.Project}
// @Router /api/v1/admin/projects/{id} [get]
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	project, err := h.projectSvc.Get(c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, project)
}

// @Summary Create a project
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param projectRequest body dto.ProjectRequest true "Project details"
// @Success 201 {object} shared.Response{data=model.Project}
// @Router /api/v1/admin/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req dto.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	project, err := h.projectSvc.Create(req)
	if err != nil {
		return err
	}

	return shared.ResponseCreated(c, project)
}

// @Summary Update a project
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Project ID"
// @Param projectRequest body dto.ProjectRequest true "Project details"
// @Success 200 {object} shared.Response{data=model.Project}
// @Router /api/v1/admin/projects/{id} [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var req dto.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	project, err := h.projectSvc.Update(c.Params("id"), req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, project)
}

// @Summary Delete a project
// @Tags admin
// @Produce json
// @Security Bearer
// @Param id path string true "Project ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	if err := h.projectSvc.Delete(c.Params("id")); err != nil {
		return err
	}

	return shared.ResponseOK(c, nil)
}
