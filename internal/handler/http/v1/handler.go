package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/emergency_response_system/internal/config"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/service"
)

type Handler struct {
	incidentService  service.IncidentService
	directoryService service.DirectoryService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	directoryService service.DirectoryService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService:  incidentService,
		directoryService: directoryService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// respondError переводит ошибку сервиса в HTTP-ответ.
// Детали внутренних ошибок только логируются.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, models.ErrValidation):
		log.WithError(err).Warn("Request rejected by service")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Requested record not found")
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// @Summary Report an emergency
// @Description Report a new emergency. The responding service is assigned automatically and the resident's emergency contacts are notified.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body ReportIncidentRequest true "Emergency report"
// @Success 201 {object} ReportIncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) reportIncident(c *gin.Context) {
	var input ReportIncidentRequest
	log := h.logger.WithField("method", "reportIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.incidentService.ReportIncident(c.Request.Context(), DTOToReportInput(input))
	if err != nil {
		h.respondError(c, log, err, "not found")
		return
	}
	c.JSON(http.StatusCreated, ReportResultToResponse(result))
}

// @Summary Get a list of incidents
// @Description Get all incidents, most recent first. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.incidentService.ListIncidents(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "incidents not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incidents of a resident
// @Description Get all incidents reported by a resident, most recent first
// @Tags Incidents
// @Produce json
// @Param residentId path int true "Resident ID"
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid resident ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/resident/{residentId} [get]
func (h *Handler) listResidentIncidents(c *gin.Context) {
	residentID, ok := parseInt64Param(c, "residentId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resident ID"})
		return
	}
	log := h.logger.WithField("method", "listResidentIncidents").WithField("resident_id", residentID)

	incidents, err := h.incidentService.ListIncidentsByResident(c.Request.Context(), residentID)
	if err != nil {
		h.respondError(c, log, err, "incidents not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get the latest incident of a resident
// @Description Get the most recent incident of a resident with its status timeline
// @Tags Incidents
// @Produce json
// @Param residentId path int true "Resident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid resident ID"
// @Failure 404 {object} map[string]string "No incidents found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/resident/{residentId}/latest [get]
func (h *Handler) latestResidentIncident(c *gin.Context) {
	residentID, ok := parseInt64Param(c, "residentId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resident ID"})
		return
	}
	log := h.logger.WithField("method", "latestResidentIncident").WithField("resident_id", residentID)

	incident, err := h.incidentService.LatestIncidentForResident(c.Request.Context(), residentID)
	if err != nil {
		h.respondError(c, log, err, "no incidents found")
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update incident status
// @Description Move an incident to a new status. Backward moves are rejected unless lenient transitions are enabled. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid incident ID, status or transition"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/status [put]
func (h *Handler) updateIncidentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "updateIncidentStatus").WithField("id", id)

	var input UpdateStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := h.incidentService.UpdateIncidentStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: fmt.Sprintf("Status updated to: %s", status),
	})
}

// @Summary Get incident statistics
// @Description Get incident counts by status, active incidents and reports within the recent window. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.incidentService.GetStats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "stats not found")
		return
	}
	c.JSON(http.StatusOK, StatsToResponse(stats, h.cfg.StatsTimeWindowMinutes))
}

// @Summary List residents
// @Tags Residents
// @Produce json
// @Success 200 {array} ResidentResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /residents [get]
func (h *Handler) listResidents(c *gin.Context) {
	log := h.logger.WithField("method", "listResidents")

	residents, err := h.directoryService.ListResidents(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "residents not found")
		return
	}
	c.JSON(http.StatusOK, ResidentsToResponses(residents))
}

// @Summary Get resident by ID
// @Tags Residents
// @Produce json
// @Param id path int true "Resident ID"
// @Success 200 {object} ResidentResponse
// @Failure 400 {object} map[string]string "Invalid resident ID"
// @Failure 404 {object} map[string]string "Resident not found"
// @Router /residents/{id} [get]
func (h *Handler) getResident(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resident ID"})
		return
	}
	log := h.logger.WithField("method", "getResident").WithField("id", id)

	resident, err := h.directoryService.GetResident(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "resident not found")
		return
	}
	c.JSON(http.StatusOK, ResidentToResponse(resident))
}

// @Summary Get emergency contacts of a resident
// @Description Contacts are ordered by priority, 1 is the highest
// @Tags Residents
// @Produce json
// @Param id path int true "Resident ID"
// @Success 200 {array} ContactResponse
// @Failure 400 {object} map[string]string "Invalid resident ID"
// @Failure 404 {object} map[string]string "Resident not found"
// @Router /residents/{id}/contacts [get]
func (h *Handler) getResidentContacts(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resident ID"})
		return
	}
	log := h.logger.WithField("method", "getResidentContacts").WithField("id", id)

	contacts, err := h.directoryService.GetResidentContacts(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "resident not found")
		return
	}
	c.JSON(http.StatusOK, ContactsToResponses(contacts))
}

// @Summary Register a resident
// @Description Register a resident who can then report emergencies. Requires API key.
// @Tags Residents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param resident body CreateResidentRequest true "Resident"
// @Success 201 {object} CreateResidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /residents [post]
func (h *Handler) createResident(c *gin.Context) {
	var input CreateResidentRequest
	log := h.logger.WithField("method", "createResident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resident := DTOToResident(input)
	if err := h.directoryService.CreateResident(c.Request.Context(), resident); err != nil {
		h.respondError(c, log, err, "not found")
		return
	}
	c.JSON(http.StatusCreated, CreateResidentResponse{
		Success:    true,
		ResidentID: resident.ID,
		Message:    residentCreatedMessage,
	})
}

// @Summary Add an emergency contact to a resident
// @Description Create a contact and link it to the resident with a relationship and priority. Requires API key.
// @Tags Residents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Resident ID"
// @Param contact body AddContactRequest true "Emergency contact"
// @Success 201 {object} AddContactResponse
// @Failure 400 {object} map[string]string "Invalid resident ID, request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Resident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /residents/{id}/contacts [post]
func (h *Handler) addResidentContact(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resident ID"})
		return
	}
	log := h.logger.WithField("method", "addResidentContact").WithField("id", id)

	var input AddContactRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact := DTOToContact(input)
	if err := h.directoryService.AddResidentContact(c.Request.Context(), id, contact); err != nil {
		h.respondError(c, log, err, "resident not found")
		return
	}
	c.JSON(http.StatusCreated, AddContactResponse{
		Success:   true,
		ContactID: contact.ContactID,
		Message:   contactAddedMessage,
	})
}

// @Summary List emergency services
// @Tags Services
// @Produce json
// @Success 200 {array} ServiceResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /services [get]
func (h *Handler) listServices(c *gin.Context) {
	log := h.logger.WithField("method", "listServices")

	services, err := h.directoryService.ListServices(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "services not found")
		return
	}
	c.JSON(http.StatusOK, ServicesToResponses(services))
}

// @Summary Get emergency service by ID
// @Tags Services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} ServiceResponse
// @Failure 400 {object} map[string]string "Invalid service ID"
// @Failure 404 {object} map[string]string "Service not found"
// @Router /services/{id} [get]
func (h *Handler) getService(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service ID"})
		return
	}
	log := h.logger.WithField("method", "getService").WithField("id", id)

	svc, err := h.directoryService.GetService(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "service not found")
		return
	}
	c.JSON(http.StatusOK, ServiceToResponse(svc))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
