package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/campuskit/campuskit/modules/orgunit/domain/orgunit"
	"github.com/campuskit/campuskit/modules/orgunit/presentation/controllers/dtos"
	"github.com/campuskit/campuskit/modules/orgunit/presentation/mappers"
	"github.com/campuskit/campuskit/modules/orgunit/presentation/viewmodels"
	"github.com/campuskit/campuskit/modules/orgunit/services"
	"github.com/campuskit/campuskit/pkg/application"
	"github.com/campuskit/campuskit/pkg/composables"
	"github.com/campuskit/campuskit/pkg/constants"
	"github.com/campuskit/campuskit/pkg/httpapi"
	"github.com/campuskit/campuskit/pkg/shared"
)

type OrgUnitAPIController struct {
	app       application.Application
	service   *services.OrgUnitService
	apiPrefix string
}

func NewOrgUnitAPIController(app application.Application) application.Controller {
	return &OrgUnitAPIController{
		app:       app,
		service:   app.Service(services.OrgUnitService{}).(*services.OrgUnitService),
		apiPrefix: "/org-units/api",
	}
}

func (c *OrgUnitAPIController) Key() string {
	return c.apiPrefix
}

func (c *OrgUnitAPIController) Register(r *mux.Router) {
	api := r.PathPrefix(c.apiPrefix).Subrouter()

	api.HandleFunc("/units", c.List).Methods(http.MethodGet)
	api.HandleFunc("/units", c.Create).Methods(http.MethodPost)
	api.HandleFunc("/units/tree", c.GetTree).Methods(http.MethodGet)
	api.HandleFunc("/units/{id}", c.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/units/{id}", c.Update).Methods(http.MethodPatch)
	api.HandleFunc("/units/{id}", c.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/units/{id}/delete-impact", c.DeleteImpact).Methods(http.MethodGet)
	api.HandleFunc("/units/{id}/archive", c.Archive).Methods(http.MethodPost)
	api.HandleFunc("/units/{id}/restore", c.Restore).Methods(http.MethodPost)

	api.HandleFunc("/units/{id}/members", c.ListMembers).Methods(http.MethodGet)
	api.HandleFunc("/units/{id}/members", c.AddMembers).Methods(http.MethodPost)
	api.HandleFunc("/units/{id}/members/{userId}", c.RemoveMember).Methods(http.MethodDelete)

	api.HandleFunc("/units/{id}/roles", c.ListRoles).Methods(http.MethodGet)
	api.HandleFunc("/units/{id}/roles", c.AssignRoles).Methods(http.MethodPost)
	api.HandleFunc("/units/{id}/roles/{roleId}", c.RemoveRole).Methods(http.MethodDelete)
}

// decodeBody parses and validates a JSON request body, writing the
// error response itself when decoding fails.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_body", "request body is not valid JSON", nil)
		return false
	}
	if err := constants.Validate.Struct(dst); err != nil {
		details := map[string]any{}
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				details[fe.Field()] = fe.Tag()
			}
		}
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_body", "request body failed validation", details)
		return false
	}
	return true
}

func parseUnitID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	unitID, err := shared.ParseUUID(r, "id")
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_unit_id", "unit id is not a valid uuid", nil)
		return uuid.Nil, false
	}
	return unitID, true
}

func (c *OrgUnitAPIController) Create(w http.ResponseWriter, r *http.Request) {
	var body dtos.CreateOrgUnitRequest
	if !decodeBody(w, r, &body) {
		return
	}
	unit, err := c.service.Create(r.Context(), body.ToCommand())
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, mappers.OrgUnitToViewModel(unit))
}

func (c *OrgUnitAPIController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUnitID(w, r)
	if !ok {
		return
	}
	var body dtos.UpdateOrgUnitRequest
	if !decodeBody(w, r, &body) {
		return
	}
	unit, err := c.service.Update(r.Context(), id, body.ToCommand())
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.OrgUnitToViewModel(unit))
}

func (c *OrgUnitAPIController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUnitID(w, r)
	if !ok {
		return
	}
	detail, err := c.service.GetByID(r.Context(), id)
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.DetailToViewModel(detail))
}

func (c *OrgUnitAPIController) GetTree(w http.ResponseWriter, r *http.Request) {
	query, err := composables.UseQuery(&dtos.TreeQuery{}, r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_query", "query string is invalid", nil)
		return
	}
	var status *orgunit.Status
	if query.Status != "" {
		parsed, err := orgunit.ParseStatus(query.Status)
		if err != nil {
			_ = httpapi.WriteServiceError(w, err)
			return
		}
		status = &parsed
	}
	items, err := c.service.GetTree(r.Context(), status)
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.ItemsToTree(items))
}

func (c *OrgUnitAPIController) List(w http.ResponseWriter, r *http.Request) {
	query, err := composables.UseQuery(&dtos.ListQuery{}, r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_query", "query string is invalid", nil)
		return
	}
	params := &orgunit.FindParams{
		ParentID: query.ParentID,
		Name:     query.Name,
		Cursor:   query.Cursor,
		Limit:    query.Limit,
	}
	if query.Status != "" {
		parsed, err := orgunit.ParseStatus(query.Status)
		if err != nil {
			_ = httpapi.WriteServiceError(w, err)
			return
		}
		params.Status = &parsed
	}
	units, err := c.service.List(r.Context(), params)
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	list := viewmodels.OrgUnitList{Items: make([]viewmodels.OrgUnit, 0, len(units))}
	for _, unit := range units {
		list.Items = append(list.Items, mappers.OrgUnitToViewModel(unit))
	}
	// A full page means there may be more; the last id is the cursor.
	if len(units) == params.ClampedLimit() {
		cursor := units[len(units)-1].ID().String()
		list.NextCursor = &cursor
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, list)
}

func (c *OrgUnitAPIController) DeleteImpact(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUnitID(w, r)
	if !ok {
		return
	}
	impact, err := c.service.DeleteImpact(r.Context(), id)
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.ImpactToViewModel(impact))
}

func (c *OrgUnitAPIController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUnitID(w, r)
	if !ok {
		return
	}
	var body dtos.DeleteOrgUnitRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_body", "request body is not valid JSON", nil)
			return
		}
	}
	impact, err := c.service.Delete(r.Context(), id, body.ConfirmationText)
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.ImpactToViewModel(impact))
}

func (c *OrgUnitAPIController) Archive(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUnitID(w, r)
	if !ok {
		return
	}
	unit, err := c.service.Archive(r.Context(), id)
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.OrgUnitToViewModel(unit))
}

func (c *OrgUnitAPIController) Restore(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUnitID(w, r)
	if !ok {
		return
	}
	if err := c.service.Restore(r.Context(), id); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func (c *OrgUnitAPIController) ListMembers(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUnitID(w, r)
	if !ok {
		return
	}
	query, err := composables.UseQuery(&dtos.MembersQuery{}, r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_query", "query string is invalid", nil)
		return
	}
	views, err := c.service.ListMembers(r.Context(), id, query.Search, query.IncludeInherited)
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	members := make([]viewmodels.Member, 0, len(views))
	for _, view := range views {
		members = append(members, mappers.MemberToViewModel(view))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, members)
}

func (c *OrgUnitAPIController) AddMembers(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUnitID(w, r)
	if !ok {
		return
	}
	var body dtos.AddMembersRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if err := c.service.AddMembers(r.Context(), id, body.ToCommand()); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func (c *OrgUnitAPIController) RemoveMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUnitID(w, r)
	if !ok {
		return
	}
	userID, err := shared.ParseUUID(r, "userId")
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_user_id", "user id is not a valid uuid", nil)
		return
	}
	if err := c.service.RemoveMember(r.Context(), id, userID); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func (c *OrgUnitAPIController) ListRoles(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUnitID(w, r)
	if !ok {
		return
	}
	query, err := composables.UseQuery(&dtos.RolesQuery{}, r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_query", "query string is invalid", nil)
		return
	}
	views, err := c.service.ListRoles(r.Context(), id, query.IncludeInherited)
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	assignments := make([]viewmodels.RoleAssignment, 0, len(views))
	for _, view := range views {
		assignments = append(assignments, mappers.RoleAssignmentToViewModel(view))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, assignments)
}

func (c *OrgUnitAPIController) AssignRoles(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUnitID(w, r)
	if !ok {
		return
	}
	var body dtos.AssignRolesRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if err := c.service.AssignRoles(r.Context(), id, body.ToCommand()); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func (c *OrgUnitAPIController) RemoveRole(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUnitID(w, r)
	if !ok {
		return
	}
	roleID, err := shared.ParseUUID(r, "roleId")
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_role_id", "role id is not a valid uuid", nil)
		return
	}
	if err := c.service.RemoveRole(r.Context(), id, roleID); err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusNoContent, nil)
}
