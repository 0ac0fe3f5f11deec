package controllers

import (
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/upgoma/upg-portal/internal/app/models"
	"github.com/upgoma/upg-portal/internal/app/models/dto"
	"github.com/upgoma/upg-portal/internal/app/services"
	"github.com/upgoma/upg-portal/internal/app/workflow"
	"github.com/upgoma/upg-portal/internal/middleware"
)

// RegistrationController drives the admission draft lifecycle: stage
// updates, attachment buffering and the final submission.
type RegistrationController struct {
	drafts              *workflow.Store
	registrationService services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(drafts *workflow.Store, registrationService services.RegistrationService) *RegistrationController {
	return &RegistrationController{
		drafts:              drafts,
		registrationService: registrationService,
	}
}

// CreateDraft opens a new admission draft
// @Summary Open an admission draft
// @Description Creates a draft at the identity stage
// @Tags registrations
// @Produce json
// @Success 201 {object} dto.APIResponse{data=dto.DraftResponse}
// @Router /registrations/drafts [post]
func (c *RegistrationController) CreateDraft(ctx *gin.Context) {
	draft := c.drafts.Create()

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      draftResponse(draft),
		Timestamp: time.Now(),
	})
}

// GetDraft returns the current state of a draft
// @Summary Get a draft
// @Tags registrations
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse}
// @Failure 404 {object} dto.ErrorResponse "Draft not found"
// @Router /registrations/drafts/{id} [get]
func (c *RegistrationController) GetDraft(ctx *gin.Context) {
	var resp dto.DraftResponse
	err := c.drafts.View(ctx.Param("id"), func(draft *workflow.Draft) {
		resp = draftResponse(draft)
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// SetIdentity records the identity stage
// @Summary Fill the identity stage
// @Description Records the candidate identity and advances to the academic stage
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body dto.IdentityRequest true "Identity fields"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid identity data"
// @Failure 404 {object} dto.ErrorResponse "Draft not found"
// @Failure 409 {object} dto.ErrorResponse "Draft is past the identity stage"
// @Router /registrations/drafts/{id}/identity [put]
func (c *RegistrationController) SetIdentity(ctx *gin.Context) {
	var req dto.IdentityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, "Invalid identity data", err)
		return
	}

	identity := models.Identity{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		MiddleName:    req.MiddleName,
		Email:         req.Email,
		Phone:         req.Phone,
		Gender:        models.Gender(req.Gender),
		MaritalStatus: models.MaritalStatus(req.MaritalStatus),
		BirthDate:     req.BirthDate,
		BirthPlace:    req.BirthPlace,
	}

	c.updateDraft(ctx, func(draft *workflow.Draft) error {
		return draft.SetIdentity(identity)
	})
}

// SetAcademic records the academic stage
// @Summary Fill the academic stage
// @Description Records the previous school and the faculty/department choice
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body dto.AcademicRequest true "Academic fields"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse}
// @Failure 400 {object} dto.ErrorResponse "Department does not belong to the faculty"
// @Failure 404 {object} dto.ErrorResponse "Draft or faculty not found"
// @Failure 409 {object} dto.ErrorResponse "Draft is not at the academic stage"
// @Router /registrations/drafts/{id}/academic [put]
func (c *RegistrationController) SetAcademic(ctx *gin.Context) {
	var req dto.AcademicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, "Invalid academic data", err)
		return
	}

	academic := models.Academic{
		PreviousSchool:   req.PreviousSchool,
		TargetFaculty:    req.TargetFaculty,
		TargetDepartment: req.TargetDepartment,
	}

	c.updateDraft(ctx, func(draft *workflow.Draft) error {
		return draft.SetAcademic(academic)
	})
}

// SetDocuments buffers the passport photo and the academic documents
// @Summary Upload the admission documents
// @Description Buffers the passport photo and academic document files in the draft until submission
// @Tags registrations
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Draft ID"
// @Param passportPhoto formData file false "Passport photo (max 5MB, image only)"
// @Param academicDocs formData file false "Academic documents"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse}
// @Failure 400 {object} dto.ErrorResponse "Photo too large or not an image"
// @Failure 404 {object} dto.ErrorResponse "Draft not found"
// @Failure 409 {object} dto.ErrorResponse "Draft is not at the documents stage"
// @Router /registrations/drafts/{id}/documents [put]
func (c *RegistrationController) SetDocuments(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		middleware.HandleBindingError(ctx, "Invalid multipart form", err)
		return
	}

	var photo *workflow.Attachment
	if files := form.File["passportPhoto"]; len(files) > 0 {
		photo, err = bufferAttachment(files[0])
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
	}

	var docs []workflow.Attachment
	for _, header := range form.File["academicDocs"] {
		att, err := bufferAttachment(header)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		docs = append(docs, *att)
	}

	c.updateDraft(ctx, func(draft *workflow.Draft) error {
		if photo != nil {
			if err := draft.AttachPhoto(*photo); err != nil {
				return err
			}
		}
		if len(docs) > 0 {
			if err := draft.AttachDocuments(docs); err != nil {
				return err
			}
		}
		return nil
	})
}

// Back re-enters the previous stage
// @Summary Go back one stage
// @Description Re-enters the previous stage without clearing its data
// @Tags registrations
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} dto.APIResponse{data=dto.DraftResponse}
// @Failure 404 {object} dto.ErrorResponse "Draft not found"
// @Failure 409 {object} dto.ErrorResponse "No previous stage"
// @Router /registrations/drafts/{id}/back [post]
func (c *RegistrationController) Back(ctx *gin.Context) {
	c.updateDraft(ctx, func(draft *workflow.Draft) error {
		return draft.Back()
	})
}

// Submit finalizes the draft
// @Summary Submit the admission
// @Description Uploads the buffered attachments, persists the record and sends the confirmation email
// @Tags registrations
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} dto.APIResponse{data=dto.SubmitResponse}
// @Failure 404 {object} dto.ErrorResponse "Draft not found"
// @Failure 409 {object} dto.ErrorResponse "Draft is not ready for submission"
// @Failure 502 {object} dto.ErrorResponse "Upload or record insert failed"
// @Failure 503 {object} dto.ErrorResponse "Record store not configured"
// @Router /registrations/drafts/{id}/submit [post]
func (c *RegistrationController) Submit(ctx *gin.Context) {
	var resp dto.SubmitResponse
	err := c.drafts.Update(ctx.Param("id"), func(draft *workflow.Draft) error {
		reg, err := c.registrationService.Submit(ctx.Request.Context(), draft)
		if err != nil {
			return err
		}
		resp = dto.SubmitResponse{
			FirstName: reg.FirstName,
			LastName:  reg.LastName,
			Faculty:   reg.TargetFaculty,
			Message:   "Votre dossier a été enregistré avec succès.",
		}
		return nil
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// GetSummary returns the registration count per faculty
// @Summary Registration summary
// @Description Returns how many registrations target each faculty
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 503 {object} dto.ErrorResponse "Record store not configured"
// @Router /registrations/summary [get]
func (c *RegistrationController) GetSummary(ctx *gin.Context) {
	counts, err := c.registrationService.Summary(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      counts,
		Timestamp: time.Now(),
	})
}

// updateDraft applies a mutation under the store lock and returns the
// refreshed draft state.
func (c *RegistrationController) updateDraft(ctx *gin.Context, fn func(*workflow.Draft) error) {
	var resp dto.DraftResponse
	err := c.drafts.Update(ctx.Param("id"), func(draft *workflow.Draft) error {
		if err := fn(draft); err != nil {
			return err
		}
		resp = draftResponse(draft)
		return nil
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// bufferAttachment reads an uploaded file into memory so the draft can
// hold it until submission.
func bufferAttachment(header *multipart.FileHeader) (*workflow.Attachment, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &workflow.Attachment{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     content,
	}, nil
}

func draftResponse(draft *workflow.Draft) dto.DraftResponse {
	return dto.DraftResponse{
		ID:                   draft.ID,
		Stage:                string(draft.Stage),
		Identity:             draft.Identity,
		Academic:             draft.Academic,
		AvailableDepartments: draft.AvailableDepartments(),
		HasPassportPhoto:     draft.PassportPhoto != nil,
		HasDocuments:         len(draft.Documents) > 0,
		CanSubmit:            draft.CanSubmit(),
	}
}
