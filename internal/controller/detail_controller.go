// internal/controller/detail_controller.go
package controller

import (
    "encoding/json"
    "log"
    "net/http"
    "os"
    "strconv"
    "sync"

    "github.com/go-chi/chi/v5"
    "github.com/streadway/amqp"

    appErrors "github.com/phishdash/phishdash-backend/internal/errors"
    "github.com/phishdash/phishdash-backend/internal/model"
    "github.com/phishdash/phishdash-backend/internal/queue"
    "github.com/phishdash/phishdash-backend/internal/service"
    "github.com/phishdash/phishdash-backend/internal/view"
)

// campaignView is the server-side state of one open campaign detail page:
// the pagination window plus at most one edit session.
type campaignView struct {
    campaign *model.Campaign
    window   *view.Window
    session  *view.EditSession
}

// DetailController serializes all view operations per registry; a commit in
// flight blocks the next operation rather than racing it.
type DetailController struct {
    Service *service.CampaignDetailService

    mu    sync.Mutex
    views map[string]*campaignView
}

func NewDetailController(svc *service.CampaignDetailService) *DetailController {
    return &DetailController{
        Service: svc,
        views:   make(map[string]*campaignView),
    }
}

func statusFor(err error) int {
    switch err.(type) {
    case *appErrors.ErrCampaignNotFound:
        return http.StatusNotFound
    case *appErrors.ErrIndexOutOfRange, *appErrors.ErrConflict,
        *appErrors.ErrEditInProgress, *appErrors.ErrNoOpenEdit:
        return http.StatusConflict
    case *appErrors.ErrInvalidShape:
        return http.StatusBadGateway
    default:
        return http.StatusInternalServerError
    }
}

func (c *DetailController) viewState(v *campaignView) map[string]interface{} {
    state := map[string]interface{}{
        "name":         v.campaign.DisplayName(),
        "domain":       v.campaign.DisplayDomain(),
        "created_at":   v.campaign.CreatedAtDisplay(),
        "visible":      v.window.Visible(),
        "current_page": v.window.Page(),
        "page_size":    v.window.PageSize(),
        "total":        len(v.window.Source()),
        "editing":      v.session.Open(),
    }
    if idx, ok := v.session.Index(); ok {
        state["edit_index"] = idx
    }
    return state
}

// OpenCampaign loads the record and resets the view to the first page.
// Re-opening an already-open campaign discards its window and any draft, the
// same as a record identity change.
func (c *DetailController) OpenCampaign(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    pageSize := view.DefaultPageSize
    if raw := r.URL.Query().Get("page_size"); raw != "" {
        if ps, err := strconv.Atoi(raw); err == nil && ps > 0 {
            pageSize = ps
        }
    }

    campaign, err := c.Service.GetCampaign(id)
    if err != nil {
        log.Println("⚠️ failed to load campaign:", err)
        http.Error(w, err.Error(), statusFor(err))
        return
    }

    c.mu.Lock()
    defer c.mu.Unlock()

    v := &campaignView{
        campaign: campaign,
        window:   view.NewWindow(pageSize),
        session:  view.NewEditSession(),
    }
    v.window.Reset(campaign.Emails)
    c.views[id] = v

    json.NewEncoder(w).Encode(c.viewState(v))
}

func (c *DetailController) openView(w http.ResponseWriter, id string) *campaignView {
    v, ok := c.views[id]
    if !ok {
        http.Error(w, "campaign view not opened", http.StatusNotFound)
        return nil
    }
    return v
}

// Expand appends the next page of emails to the visible window.
func (c *DetailController) Expand(w http.ResponseWriter, r *http.Request) {
    c.mu.Lock()
    defer c.mu.Unlock()

    v := c.openView(w, chi.URLParam(r, "id"))
    if v == nil {
        return
    }
    v.window.Expand()
    json.NewEncoder(w).Encode(c.viewState(v))
}

// Collapse retracts the window to the previous single page.
func (c *DetailController) Collapse(w http.ResponseWriter, r *http.Request) {
    c.mu.Lock()
    defer c.mu.Unlock()

    v := c.openView(w, chi.URLParam(r, "id"))
    if v == nil {
        return
    }
    v.window.Collapse()
    json.NewEncoder(w).Encode(c.viewState(v))
}

// BeginEdit opens an edit session for the email profile at the given index.
func (c *DetailController) BeginEdit(w http.ResponseWriter, r *http.Request) {
    var body struct {
        Index int `json:"index"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    c.mu.Lock()
    defer c.mu.Unlock()

    v := c.openView(w, chi.URLParam(r, "id"))
    if v == nil {
        return
    }

    source := v.window.Source()
    if body.Index < 0 || body.Index >= len(source) {
        http.Error(w, "invalid email index", http.StatusBadRequest)
        return
    }

    if err := v.session.Begin(body.Index, source[body.Index]); err != nil {
        log.Println("⚠️ begin edit rejected:", err)
        http.Error(w, err.Error(), statusFor(err))
        return
    }

    json.NewEncoder(w).Encode(c.viewState(v))
}

// SetField updates one field of the open draft. Checkbox fields store a
// boolean; everything else keeps the raw value verbatim.
func (c *DetailController) SetField(w http.ResponseWriter, r *http.Request) {
    var body struct {
        Name     string `json:"name"`
        Value    string `json:"value"`
        Checkbox bool   `json:"checkbox"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    c.mu.Lock()
    defer c.mu.Unlock()

    v := c.openView(w, chi.URLParam(r, "id"))
    if v == nil {
        return
    }

    if err := v.session.SetField(body.Name, body.Value, body.Checkbox); err != nil {
        http.Error(w, err.Error(), statusFor(err))
        return
    }

    json.NewEncoder(w).Encode(c.viewState(v))
}

// CancelEdit discards the draft. No store interaction.
func (c *DetailController) CancelEdit(w http.ResponseWriter, r *http.Request) {
    c.mu.Lock()
    defer c.mu.Unlock()

    v := c.openView(w, chi.URLParam(r, "id"))
    if v == nil {
        return
    }

    v.session.Cancel()
    json.NewEncoder(w).Encode(c.viewState(v))
}

// SaveEdit commits the open draft. On success the session closes and the
// window resets to the first page of the re-fetched record; on failure both
// are left exactly as they were.
func (c *DetailController) SaveEdit(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")

    c.mu.Lock()
    defer c.mu.Unlock()

    v := c.openView(w, id)
    if v == nil {
        return
    }

    index, ok := v.session.Index()
    if !ok {
        log.Println("⚠️ no email selected for editing")
        err := appErrors.NewNoOpenEdit()
        http.Error(w, err.Error(), statusFor(err))
        return
    }

    profile := v.session.Profile()
    reloaded, err := c.Service.CommitEdit(id, index, profile)
    if err != nil {
        log.Println("⚠️ Error updating email profile:", err)
        http.Error(w, err.Error(), statusFor(err))
        return
    }

    v.session.Cancel()
    v.campaign = reloaded
    v.window.Reset(reloaded.Emails)

    c.publishUpdate(queue.UpdateEvent{
        CampaignID: id,
        Index:      index,
        Email:      profile.Email,
    })

    json.NewEncoder(w).Encode(c.viewState(v))
}

// publishUpdate mirrors the committed edit onto RabbitMQ for the out-of-band
// audit worker. The commit is already durable, so broker trouble only logs.
func (c *DetailController) publishUpdate(event queue.UpdateEvent) {
    url := os.Getenv("AMQP_URL")
    if url == "" {
        return
    }

    conn, err := amqp.Dial(url)
    if err != nil {
        log.Println("⚠️ Failed to connect to queue:", err)
        return
    }
    defer conn.Close()

    ch, err := conn.Channel()
    if err != nil {
        log.Println("⚠️ Failed to open queue channel:", err)
        return
    }
    defer ch.Close()

    q, err := ch.QueueDeclare(
        queue.TopicCampaignUpdates,
        true,
        false,
        false,
        false,
        nil,
    )
    if err != nil {
        log.Println("⚠️ Failed to declare queue:", err)
        return
    }

    body, _ := json.Marshal(event)
    err = ch.Publish(
        "",
        q.Name,
        false,
        false,
        amqp.Publishing{
            ContentType: "application/json",
            Body:        body,
        },
    )
    if err != nil {
        log.Println("Failed to publish message:", err)
    }
}
