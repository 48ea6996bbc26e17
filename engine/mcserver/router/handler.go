package router

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/craftchat/craftchat/engine/mcserver"
	"github.com/craftchat/craftchat/pkg/logger"
)

const (
	msgAllFieldsRequired = "All fields are required."
	msgInvalidPort       = "Invalid port number."
	msgInvalidIndex      = "Invalid server index."
)

// serverForm carries the raw form values so a failed submission can be
// redisplayed exactly as entered.
type serverForm struct {
	Name string
	Host string
	Port string
	Type string
}

// Handler serves the admin pages: server CRUD and the API-key form.
type Handler struct {
	registry *mcserver.Registry
}

// NewHandler creates an admin handler.
func NewHandler(registry *mcserver.Registry) *Handler {
	return &Handler{registry: registry}
}

// AdminPage renders the server list and API-key status. Flash messages
// arrive as query parameters set by the redirecting mutation handlers.
func (h *Handler) AdminPage(c *gin.Context) {
	h.renderAdmin(c, http.StatusOK, gin.H{
		"Error":   c.Query("error"),
		"Warning": c.Query("warning"),
		"Message": c.Query("message"),
	})
}

// AddServer appends a new server from the posted form. Validation
// failures redisplay the page with the submitted values and no change.
func (h *Handler) AddServer(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())
	form, cfg, errMsg := parseServerForm(c)
	if errMsg != "" {
		h.renderAdmin(c, http.StatusOK, gin.H{"Error": errMsg, "Form": form})
		return
	}
	if err := h.registry.Add(cfg); err != nil {
		h.renderAdmin(c, http.StatusOK, gin.H{"Error": msgInvalidPort, "Form": form})
		return
	}
	log.Info("Added server", "name", cfg.Name, "host", cfg.Host, "port", cfg.Port)
	redirectAdmin(c, url.Values{"message": {"Added server '" + cfg.Name + "'."}})
}

// SaveAPIKey overwrites the API-key slot. Blank input is a no-op with a
// warning rather than clearing the stored key.
func (h *Handler) SaveAPIKey(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())
	if !h.registry.SetAPIKey(c.PostForm("api_key")) {
		redirectAdmin(c, url.Values{"warning": {"API key was blank; nothing saved."}})
		return
	}
	log.Info("API key updated")
	redirectAdmin(c, url.Values{"message": {"API key saved."}})
}

// DeleteServer removes the server at the given position.
func (h *Handler) DeleteServer(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		redirectAdmin(c, url.Values{"error": {msgInvalidIndex}})
		return
	}
	removed, err := h.registry.Remove(index)
	if err != nil {
		redirectAdmin(c, url.Values{"error": {msgInvalidIndex}})
		return
	}
	log.Info("Removed server", "name", removed.Name, "index", index)
	redirectAdmin(c, url.Values{"message": {"Removed server '" + removed.Name + "'."}})
}

// EditServerPage shows the edit form pre-filled with the current values.
func (h *Handler) EditServerPage(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		redirectAdmin(c, url.Values{"error": {msgInvalidIndex}})
		return
	}
	cfg, err := h.registry.Get(index)
	if err != nil {
		redirectAdmin(c, url.Values{"error": {msgInvalidIndex}})
		return
	}
	c.HTML(http.StatusOK, "edit_server.html", gin.H{
		"Index": index,
		"Form": serverForm{
			Name: cfg.Name,
			Host: cfg.Host,
			Port: strconv.Itoa(cfg.Port),
			Type: cfg.Type,
		},
	})
}

// EditServerSubmit validates the posted form and replaces the record.
func (h *Handler) EditServerSubmit(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		redirectAdmin(c, url.Values{"error": {msgInvalidIndex}})
		return
	}
	form, cfg, errMsg := parseServerForm(c)
	if errMsg != "" {
		c.HTML(http.StatusOK, "edit_server.html", gin.H{
			"Index": index,
			"Form":  form,
			"Error": errMsg,
		})
		return
	}
	if err := h.registry.Update(index, cfg); err != nil {
		redirectAdmin(c, url.Values{"error": {msgInvalidIndex}})
		return
	}
	log.Info("Updated server", "name", cfg.Name, "index", index)
	redirectAdmin(c, url.Values{"message": {"Updated server '" + cfg.Name + "'."}})
}

func (h *Handler) renderAdmin(c *gin.Context, status int, extra gin.H) {
	keySet, keyHint := h.registry.APIKeyHint()
	data := gin.H{
		"Servers":    h.registry.List(),
		"APIKeySet":  keySet,
		"APIKeyHint": keyHint,
		"Form":       serverForm{},
	}
	for k, v := range extra {
		data[k] = v
	}
	c.HTML(status, "admin.html", data)
}

// parseServerForm reads the posted server fields. It returns the raw form
// for redisplay, the parsed config, and a user-facing error message when
// the input is unusable.
func parseServerForm(c *gin.Context) (serverForm, mcserver.ServerConfig, string) {
	form := serverForm{
		Name: c.PostForm("name"),
		Host: c.PostForm("host"),
		Port: c.PostForm("port"),
		Type: c.PostForm("type"),
	}
	if form.Name == "" || form.Host == "" || form.Port == "" {
		return form, mcserver.ServerConfig{}, msgAllFieldsRequired
	}
	port, err := strconv.Atoi(form.Port)
	if err != nil || port < 1 || port > 65535 {
		return form, mcserver.ServerConfig{}, msgInvalidPort
	}
	return form, mcserver.ServerConfig{
		Name: form.Name,
		Host: form.Host,
		Port: port,
		Type: form.Type,
	}, ""
}

func redirectAdmin(c *gin.Context, params url.Values) {
	target := "/admin"
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	c.Redirect(http.StatusFound, target)
}
