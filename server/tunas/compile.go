package tunas

import (
	"context"

	"github.com/dekarrin/ppauto/internal/pipeline"
	"github.com/dekarrin/ppauto/server/dao"
	"github.com/dekarrin/ppauto/server/serr"
	"github.com/google/uuid"
)

// Compile runs the parse/build/(atomize)/cache/emit pipeline against text
// and records the outcome as a Job. It is the server-side entry point the
// CLI's own ppauto compile command also calls indirectly through
// internal/pipeline, so the two paths can never diverge on semantics.
func (svc Service) Compile(ctx context.Context, text string, opts pipeline.Options) (dao.Job, pipeline.Result, error) {
	if opts.CacheDir == "" {
		opts.CacheDir = svc.CacheDir
	}

	result, err := pipeline.Compile(text, opts)

	job := dao.Job{Flavor: result.Flavor}
	if err != nil {
		job.Outcome = err.Error()
	} else {
		job.Outcome = "ok"
		job.States = result.States
		job.Symbols = result.Symbols
		job.Files = len(result.Files)
	}

	stored, jobErr := svc.DB.Jobs().Create(ctx, job)
	if jobErr != nil {
		// a failure to record the job must not hide a real compile error.
		if err != nil {
			return dao.Job{}, result, err
		}
		return dao.Job{}, result, serr.WrapDB("could not record job", jobErr)
	}

	return stored, result, err
}

// GetJob returns the record of a past compile by ID.
func (svc Service) GetJob(ctx context.Context, id string) (dao.Job, error) {
	uuidID, err := uuid.Parse(id)
	if err != nil {
		return dao.Job{}, serr.New("ID is not valid", serr.ErrBadArgument)
	}

	job, err := svc.DB.Jobs().GetByID(ctx, uuidID)
	if err != nil {
		if err == dao.ErrNotFound {
			return dao.Job{}, serr.ErrNotFound
		}
		return dao.Job{}, serr.WrapDB("could not get job", err)
	}

	return job, nil
}
