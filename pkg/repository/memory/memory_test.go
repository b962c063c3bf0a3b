package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/forage-labs/stitch/pkg/domain/model"
	"github.com/forage-labs/stitch/pkg/domain/types"
	"github.com/forage-labs/stitch/pkg/repository/memory"
)

func TestCaseRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("put assigns ID and timestamp", func(t *testing.T) {
		repo := memory.New()

		c := &model.SupportCase{
			Question:  "Wo ist mein Paket?",
			Answer:    "Hi Tim,\n\nwir schauen nach.",
			Embedding: []float32{1, 0, 0},
		}
		gt.NoError(t, repo.Case().Put(ctx, c)).Required()

		// The stored copy got the ID, the input is untouched
		gt.Value(t, c.ID).Equal(model.CaseID(""))
	})

	t.Run("get returns a stored case", func(t *testing.T) {
		repo := memory.New()

		id := model.NewCaseID()
		gt.NoError(t, repo.Case().Put(ctx, &model.SupportCase{
			ID:        id,
			Question:  "Frage",
			Answer:    "Antwort",
			Embedding: []float32{1, 0, 0},
			CreatedAt: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		})).Required()

		got, err := repo.Case().Get(ctx, id)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Question).Equal("Frage")
		gt.Value(t, got.CreatedAt).Equal(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	})

	t.Run("get unknown ID returns not found", func(t *testing.T) {
		repo := memory.New()

		_, err := repo.Case().Get(ctx, model.NewCaseID())
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, memory.ErrNotFound)).True()
	})

	t.Run("find similar orders by descending similarity", func(t *testing.T) {
		repo := memory.New()

		gt.NoError(t, repo.Case().Put(ctx, &model.SupportCase{
			Question: "orthogonal", Answer: "a", Embedding: []float32{0, 1, 0},
		})).Required()
		gt.NoError(t, repo.Case().Put(ctx, &model.SupportCase{
			Question: "identical", Answer: "b", Embedding: []float32{1, 0, 0},
		})).Required()
		gt.NoError(t, repo.Case().Put(ctx, &model.SupportCase{
			Question: "close", Answer: "c", Embedding: []float32{1, 0.2, 0},
		})).Required()

		found, err := repo.Case().FindSimilar(ctx, []float32{1, 0, 0}, 5)
		gt.NoError(t, err).Required()
		gt.Array(t, found).Length(3)
		gt.Value(t, found[0].Question).Equal("identical")
		gt.Value(t, found[1].Question).Equal("close")
		gt.Value(t, found[2].Question).Equal("orthogonal")
		gt.Value(t, found[0].Similarity > found[1].Similarity).Equal(true)
		gt.Value(t, found[1].Similarity > found[2].Similarity).Equal(true)
	})

	t.Run("find similar respects the limit", func(t *testing.T) {
		repo := memory.New()

		for i := 0; i < 4; i++ {
			gt.NoError(t, repo.Case().Put(ctx, &model.SupportCase{
				Question: "q", Answer: "a", Embedding: []float32{1, float32(i), 0},
			})).Required()
		}

		found, err := repo.Case().FindSimilar(ctx, []float32{1, 0, 0}, 2)
		gt.NoError(t, err).Required()
		gt.Array(t, found).Length(2)
	})

	t.Run("cases without embedding are skipped", func(t *testing.T) {
		repo := memory.New()

		gt.NoError(t, repo.Case().Put(ctx, &model.SupportCase{
			Question: "no embedding", Answer: "a",
		})).Required()

		found, err := repo.Case().FindSimilar(ctx, []float32{1, 0, 0}, 5)
		gt.NoError(t, err).Required()
		gt.Array(t, found).Length(0)
	})
}

func TestFeedbackRepository(t *testing.T) {
	ctx := context.Background()

	valid := func() *model.Feedback {
		return &model.Feedback{
			CustomerMessage: "Nachricht",
			Suggestion:      "Vorschlag",
			FinalResponse:   "Antwort",
			Rating:          types.FeedbackPositive,
		}
	}

	t.Run("create assigns ID and timestamp", func(t *testing.T) {
		repo := memory.New()

		created, err := repo.Feedback().Create(ctx, valid())
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID.String() != "").Equal(true)
		gt.Bool(t, created.CreatedAt.IsZero()).False()
	})

	t.Run("create rejects invalid records", func(t *testing.T) {
		repo := memory.New()

		fb := valid()
		fb.Rating = types.FeedbackRating("großartig")
		_, err := repo.Feedback().Create(ctx, fb)
		gt.Error(t, err)
	})

	t.Run("list returns newest first with limit", func(t *testing.T) {
		repo := memory.New()

		base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 3; i++ {
			fb := valid()
			fb.CreatedAt = base.Add(time.Duration(i) * time.Hour)
			fb.CustomerMessage = []string{"erste", "zweite", "dritte"}[i]
			_, err := repo.Feedback().Create(ctx, fb)
			gt.NoError(t, err).Required()
		}

		records, err := repo.Feedback().List(ctx, 2)
		gt.NoError(t, err).Required()
		gt.Array(t, records).Length(2)
		gt.Value(t, records[0].CustomerMessage).Equal("dritte")
		gt.Value(t, records[1].CustomerMessage).Equal("zweite")
	})
}
