package api

import (
	"archive/zip"
	"bytes"
	"net/http"

	"github.com/dekarrin/ppauto/internal/pipeline"
	"github.com/dekarrin/ppauto/internal/ppcerrors"
	"github.com/dekarrin/ppauto/internal/recognizer/model"
	"github.com/dekarrin/ppauto/server/result"
)

type CompileRequest struct {
	Flavor      string `json:"flavor"`
	Description string `json:"description"`
}

// HTTPCreateCompile returns a HandlerFunc that runs a description through
// internal/pipeline and returns the emitted headers as a zip stream. It
// must be mounted behind middle.RequireAuth.
func (api API) HTTPCreateCompile() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		defer panicTo500(w, req)

		reqData := CompileRequest{}
		if err := parseJSON(req, &reqData); err != nil {
			r := result.BadRequest(err.Error(), err.Error())
			logHttpResponse("ERROR", req, r.Status, r.InternalMsg)
			r.WriteResponse(w, req)
			return
		}

		opts := pipeline.Options{Flavor: model.Flavor(reqData.Flavor)}

		job, compResult, err := api.Backend.Compile(req.Context(), reqData.Description, opts)
		if err != nil {
			r := compileErrorResult(err)
			logHttpResponse("ERROR", req, r.Status, r.InternalMsg)
			r.WriteResponse(w, req)
			return
		}

		zipped, err := zipFiles(compResult.Files)
		if err != nil {
			r := result.InternalServerError("could not build zip: " + err.Error())
			logHttpResponse("ERROR", req, r.Status, r.InternalMsg)
			r.WriteResponse(w, req)
			return
		}

		logHttpResponse("INFO", req, http.StatusOK, "job '"+job.ID.String()+"' compiled "+string(compResult.Flavor))

		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("X-Job-ID", job.ID.String())
		w.WriteHeader(http.StatusOK)
		w.Write(zipped)
	}
}

func zipFiles(files map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := zw.Create(name)
		if err != nil {
			return nil, err
		}
		if _, err := f.Write([]byte(content)); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// compileErrorResult maps a ppcerrors.CompileError to the HTTP status the
// diagnostic taxonomy assigns it: 400 for everything but an I/O failure,
// which is a 500.
func compileErrorResult(err error) result.Result {
	if cerr, ok := err.(*ppcerrors.CompileError); ok && cerr.Kind == ppcerrors.IO {
		return result.InternalServerError(err.Error())
	}
	return result.BadRequest(err.Error(), err.Error())
}
