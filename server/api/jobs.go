package api

import (
	"errors"
	"net/http"

	"github.com/dekarrin/ppauto/server/dao"
	"github.com/dekarrin/ppauto/server/result"
	"github.com/dekarrin/ppauto/server/serr"
)

type JobResponse struct {
	ID        string `json:"id"`
	Flavor    string `json:"flavor"`
	States    int    `json:"states"`
	Symbols   int    `json:"symbols"`
	Files     int    `json:"files"`
	CreatedAt string `json:"created_at"`
	Outcome   string `json:"outcome"`
}

func jobToResponse(j dao.Job) JobResponse {
	return JobResponse{
		ID:        j.ID.String(),
		Flavor:    string(j.Flavor),
		States:    j.States,
		Symbols:   j.Symbols,
		Files:     j.Files,
		CreatedAt: j.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		Outcome:   j.Outcome,
	}
}

// HTTPGetJob returns a HandlerFunc that fetches the record of a past
// compile job by ID. It must be mounted behind middle.RequireAuth.
func (api API) HTTPGetJob() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epGetJob)
}

func (api API) epGetJob(req *http.Request) result.Result {
	id := requireIDParam(req)

	job, err := api.Backend.GetJob(req.Context(), id.String())
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return result.NotFound()
		}
		return result.InternalServerError(err.Error())
	}

	return result.OK(jobToResponse(job))
}
