package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/upgoma/upg-portal/internal/app/models"
	"github.com/upgoma/upg-portal/internal/app/models/dto"
	"github.com/upgoma/upg-portal/internal/middleware"
	"github.com/upgoma/upg-portal/internal/pkg/apperrors"
)

// CatalogController serves the static institutional catalog: identity,
// navigation, faculties, team, advantages and the admission checklist.
type CatalogController struct{}

// NewCatalogController creates a new CatalogController
func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// GetContact returns the institutional identity and contact block
// @Summary Get institutional contact details
// @Description Returns the university name, contact details and social links
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /catalog/contact [get]
func (c *CatalogController) GetContact(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: gin.H{
			"name":    models.UniversityName,
			"abbr":    models.UniversityAbbr,
			"phone":   models.ContactPhone,
			"email":   models.ContactEmail,
			"address": models.ContactAddress,
			"social": gin.H{
				"facebook": models.SocialFacebook,
				"x":        models.SocialX,
				"linkedin": models.SocialLinkedIn,
			},
		},
		Timestamp: time.Now(),
	})
}

// GetNavigation returns the site navigation entries in display order
// @Summary Get navigation
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.NavItem}
// @Router /catalog/navigation [get]
func (c *CatalogController) GetNavigation(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      models.NavItems,
		Timestamp: time.Now(),
	})
}

// GetAllFaculties returns the faculty catalog with department lists
// @Summary Get all faculties
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Faculty}
// @Router /catalog/faculties [get]
func (c *CatalogController) GetAllFaculties(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      models.Faculties,
		Timestamp: time.Now(),
	})
}

// GetFacultyByID returns one faculty of the catalog
// @Summary Get faculty details
// @Tags catalog
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /catalog/faculties/{id} [get]
func (c *CatalogController) GetFacultyByID(ctx *gin.Context) {
	faculty, ok := models.FacultyByID(ctx.Param("id"))
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrFacultyNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      faculty,
		Timestamp: time.Now(),
	})
}

// GetTeam returns the leadership roster
// @Summary Get the leadership team
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.TeamMember}
// @Router /catalog/team [get]
func (c *CatalogController) GetTeam(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      models.Team,
		Timestamp: time.Now(),
	})
}

// GetAdvantages returns the highlighted strengths of the university
// @Summary Get advantages
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Advantage}
// @Router /catalog/advantages [get]
func (c *CatalogController) GetAdvantages(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      models.Advantages,
		Timestamp: time.Now(),
	})
}

// GetAdmissionDocuments returns the admission document checklist
// @Summary Get the admission checklist
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string}
// @Router /catalog/admission-documents [get]
func (c *CatalogController) GetAdmissionDocuments(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      models.AdmissionDocuments,
		Timestamp: time.Now(),
	})
}
