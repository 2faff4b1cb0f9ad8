package restapi

import (
	"net/http"

	"steerage.maritimedata.org/internal/models"
	"steerage.maritimedata.org/internal/scoring"
	"steerage.maritimedata.org/internal/utils"
)

// predictHandler scores a hypothetical passenger described by query
// parameters. Missing fields take the scorer's defaults and malformed
// numerics degrade to a skipped rule, so the endpoint never rejects an
// input. It also has no dataset dependency: predictions work even when
// the one-shot load failed.
func (api *RestAPI) predictHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	in := scoring.Input{
		Pclass:   utils.ParseLenientInt(params, "pclass"),
		Sex:      params.Get("sex"),
		Age:      utils.ParseOptionalFloat(params, "age"),
		SibSp:    utils.ParseLenientFloat(params, "sibsp"),
		Parch:    utils.ParseLenientFloat(params, "parch"),
		Fare:     utils.ParseOptionalFloat(params, "fare"),
		Embarked: params.Get("embarked"),
	}

	result := scoring.Score(in)

	sibsp, parch := in.SibSp, in.Parch
	echo := models.PredictionInput{
		Pclass:   in.Pclass,
		Sex:      in.Sex,
		Age:      models.JSONNumber(in.Age),
		SibSp:    models.JSONNumber(&sibsp),
		Parch:    models.JSONNumber(&parch),
		Fare:     models.JSONNumber(in.Fare),
		Embarked: in.Embarked,
	}

	entry := models.NewPredictionEntry(echo, result.Probability, result.Survived)
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
