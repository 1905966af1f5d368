// Package transport exposes the HTTP status and block lookup endpoints.
package transport

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
)

// StatusHandler serves the follower status and single block lookups.
type StatusHandler struct {
	follow    FollowStatus
	fetcher   BlockFetcher
	logger    *zap.Logger
	marshaler *gwruntime.JSONPb
}

type statusResponse struct {
	State    string  `json:"state"`
	Tip      string  `json:"tip,omitempty"`
	Position *uint64 `json:"position,omitempty"`
}

type blockResponse struct {
	Position uint64          `json:"position"`
	Hash     string          `json:"hash"`
	Height   uint64          `json:"height"`
	Chain    string          `json:"chain"`
	Block    json.RawMessage `json:"block"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewStatusHandler constructs a StatusHandler. fetcher may be nil, in which
// case block lookups answer 503.
func NewStatusHandler(follow FollowStatus, fetcher BlockFetcher, logger *zap.Logger) (*StatusHandler, error) {
	if follow == nil {
		return nil, errors.New("follow status is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatusHandler{
		follow:  follow,
		fetcher: fetcher,
		logger:  logger,
		marshaler: &gwruntime.JSONPb{
			MarshalOptions: protojson.MarshalOptions{UseProtoNames: true},
		},
	}, nil
}

// Register mounts the handlers on mux.
func (h *StatusHandler) Register(mux *gwruntime.ServeMux) error {
	if err := mux.HandlePath(http.MethodGet, "/v1/status", h.status); err != nil {
		return fmt.Errorf("register status route: %w", err)
	}
	if err := mux.HandlePath(http.MethodGet, "/v1/blocks/{ref}", h.block); err != nil {
		return fmt.Errorf("register block route: %w", err)
	}
	return nil
}

func (h *StatusHandler) status(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	resp := statusResponse{State: string(h.follow.State())}
	if tip, ok := h.follow.Tip(); ok {
		position := tip.Position()
		resp.Tip = tip.String()
		resp.Position = &position
	}
	h.write(w, http.StatusOK, resp)
}

func (h *StatusHandler) block(w http.ResponseWriter, r *http.Request, params map[string]string) {
	ref, err := model.ParseBlockRef(params["ref"])
	if err != nil {
		h.write(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if h.fetcher == nil {
		h.write(w, http.StatusServiceUnavailable, errorResponse{Error: "block lookup is disabled"})
		return
	}

	records, err := h.fetcher.Fetch(r.Context(), []model.BlockRef{ref})
	switch {
	case err != nil && (model.IsTransport(err) || errors.Is(err, model.ErrDecode)):
		h.logger.Warn("block lookup failed", zap.Stringer("ref", ref), zap.Error(err))
		h.write(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	case err != nil:
		h.logger.Error("block lookup failed", zap.Stringer("ref", ref), zap.Error(err))
		h.write(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	case len(records) == 0:
		h.write(w, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("block %s not found", ref)})
		return
	}

	record := records[0]
	payload := []byte("null")
	if record.Payload != nil {
		if payload, err = h.marshaler.Marshal(record.Payload); err != nil {
			h.write(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
	}
	h.write(w, http.StatusOK, blockResponse{
		Position: record.Position,
		Hash:     hex.EncodeToString(record.Hash),
		Height:   record.Height,
		Chain:    string(record.Chain),
		Block:    payload,
	})
}

func (h *StatusHandler) write(w http.ResponseWriter, code int, v any) {
	body, err := h.marshaler.Marshal(v)
	if err != nil {
		h.logger.Error("marshal response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", h.marshaler.ContentType(v))
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		h.logger.Debug("write response", zap.Error(err))
	}
}
