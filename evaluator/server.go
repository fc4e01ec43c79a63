package evaluator

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"minichess/game"
)

// NewServeMux returns an HTTP handler exposing an evaluator at /predict, so
// search workers on other machines can share one model process.
func NewServeMux(evaluate game.Evaluator) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/predict", func(w http.ResponseWriter, r *http.Request) {
		var req predictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
			return
		}

		policy, value, err := evaluate.Predict(req.Observation)
		if err != nil {
			http.Error(w, "prediction failed: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(predictResponse{Policy: policy, Value: value}); err != nil {
			log.Error().Err(err).Msg("failed to encode prediction")
		}
	})
	return mux
}

// Serve runs an evaluator server on the given address until the listener
// fails.
func Serve(addr string, evaluate game.Evaluator) error {
	log.Info().Msgf("starting evaluator server on %s", addr)
	return http.ListenAndServe(addr, NewServeMux(evaluate))
}
