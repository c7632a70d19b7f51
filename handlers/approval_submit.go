package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"github.com/rs/zerolog/log"

	"storebranding/services"
)

// HandleSubmitApproval runs one approval submission for the brand and
// distributor posted in the form. The track comes from the path.
func HandleSubmitApproval(svc *services.ApprovalService, timeout time.Duration) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		track, ok := services.ParseTrack(e.Request.PathValue("track"))
		if !ok {
			return ErrorToast(e, http.StatusBadRequest, "Unknown approval track")
		}

		user, ok := GetCurrentVendor(e.Request)
		if !ok {
			return ErrorToast(e, http.StatusUnauthorized, "Select a vendor first")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		in := services.SubmitInput{
			Track:             track,
			BrandID:           strings.TrimSpace(e.Request.FormValue("brand")),
			DistributorID:     strings.TrimSpace(e.Request.FormValue("distributor")),
			Operator:          strings.TrimSpace(e.Request.FormValue("operator")),
			SecondaryOperator: strings.TrimSpace(e.Request.FormValue("secondary_operator")),
		}
		if in.BrandID == "" || in.DistributorID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Brand and distributor are required")
		}

		ctx := e.Request.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		req, err := svc.Submit(ctx, in, user)
		if err != nil {
			log.Warn().Err(err).
				Str("track", string(track)).
				Str("brand", in.BrandID).
				Str("distributor", in.DistributorID).
				Msg("approval_submit: submission rejected")
			return ErrorToast(e, submitStatus(err), services.UserMessage(err))
		}

		log.Info().Str("request_id", req.RequestID).Msg("approval_submit: submitted")
		SetToast(e, ToastSuccess, "Submitted for "+track.ApprovalType()+" execution approval")

		// Reload the approvals table with the new status.
		e.Response.Header().Set("HX-Trigger-After-Settle", "approvalsChanged")
		return e.String(http.StatusOK, "OK")
	}
}

func submitStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrNoStoresFound), errors.Is(err, services.ErrNoAfterImagesFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrSubmissionInProgress):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
