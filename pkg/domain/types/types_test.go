package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/forage-labs/stitch/pkg/domain/types"
)

func TestIntent(t *testing.T) {
	t.Run("known intents are valid", func(t *testing.T) {
		for _, intent := range types.AllIntents() {
			gt.Value(t, intent.IsValid()).Equal(true)
		}
		gt.Value(t, types.Intent("retoure").IsValid()).Equal(false)
		gt.Value(t, types.Intent("").IsValid()).Equal(false)
	})

	t.Run("only cancellation and address change are actionable", func(t *testing.T) {
		gt.Value(t, types.IntentCancellation.Actionable()).Equal(true)
		gt.Value(t, types.IntentAddressChange.Actionable()).Equal(true)
		gt.Value(t, types.IntentNone.Actionable()).Equal(false)
		gt.Value(t, types.Intent("retoure").Actionable()).Equal(false)
	})

	t.Run("labels are German", func(t *testing.T) {
		gt.Value(t, types.IntentCancellation.Label()).Equal("Stornierung")
		gt.Value(t, types.IntentAddressChange.Label()).Equal("Adressänderung")
	})
}

func TestFeedbackRating(t *testing.T) {
	t.Run("parse accepts known ratings", func(t *testing.T) {
		for _, rating := range types.AllFeedbackRatings() {
			parsed, err := types.ParseFeedbackRating(rating.String())
			gt.NoError(t, err).Required()
			gt.Value(t, parsed).Equal(rating)
		}
	})

	t.Run("parse rejects unknown ratings", func(t *testing.T) {
		_, err := types.ParseFeedbackRating("großartig")
		gt.Error(t, err)
		_, err = types.ParseFeedbackRating("")
		gt.Error(t, err)
	})
}
