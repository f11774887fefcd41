package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/search"
)

type CompanyReader interface {
	List(ctx context.Context, p search.Paging) ([]models.Company, error)
	Get(ctx context.Context, id string) (*models.Company, error)
}

type CompanyHandler struct {
	Companies CompanyReader
	Logger    *log.Logger
}

func NewCompanyHandler(companies CompanyReader, logger *log.Logger) *CompanyHandler {
	return &CompanyHandler{Companies: companies, Logger: logger}
}

// ListCompanies is GET /api/companies
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	paging, err := search.ParsePaging(c.Request.URL.Query(), search.MaxLimit)
	if err != nil {
		respondError(c, h.Logger, "ListCompanies", err, "")
		return
	}
	companies, err := h.Companies.List(c.Request.Context(), paging)
	if err != nil {
		respondError(c, h.Logger, "ListCompanies", err, "")
		return
	}
	c.JSON(http.StatusOK, companies)
}

// GetCompany is GET /api/companies/:id
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.Companies.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, "GetCompany", err, "Company not found")
		return
	}
	c.JSON(http.StatusOK, company)
}
