package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &DB{DB: db, dialect: postgresDialect, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testCard() models.Card {
	return models.Card{CardID: "ana", Name: "Ana", Email: "ana@example.com", WhatsApp: "+5511999999999"}
}

func TestCardRepository_CreateCard(t *testing.T) {
	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{name: "success"},
		{name: "duplicate card_id", execErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrCardAlreadyExists},
		{name: "connection lost", execErr: errors.New("conn reset"), wantErr: ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewCardRepository(db, logger.Nop())

			exp := mock.ExpectExec("INSERT INTO cards")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.CreateCard(context.Background(), testCard())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCardRepository_UpdateCard(t *testing.T) {
	update := models.CardUpdate{CardID: "ana", Bio: strPtr("new bio")}

	t.Run("updated", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewCardRepository(db, logger.Nop())

		mock.ExpectExec(`UPDATE cards SET "bio"`).
			WithArgs("new bio", "ana").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateCard(context.Background(), update))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing card is not created", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewCardRepository(db, logger.Nop())

		mock.ExpectExec("UPDATE cards").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateCard(context.Background(), update), ErrCardNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewCardRepository(db, logger.Nop())

		mock.ExpectExec("UPDATE cards").WillReturnError(errors.New("timeout"))

		assert.ErrorIs(t, repo.UpdateCard(context.Background(), update), ErrStoreUnavailable)
	})

	t.Run("empty update never reaches the database", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewCardRepository(db, logger.Nop())

		err := repo.UpdateCard(context.Background(), models.CardUpdate{CardID: "ana"})
		assert.ErrorIs(t, err, ErrBuildingSQLQuery)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCardRepository_UpsertCard(t *testing.T) {
	update := models.CardUpdate{CardID: "ghost", Name: strPtr("Ghost")}

	t.Run("upserted", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewCardRepository(db, logger.Nop())

		mock.ExpectExec(`INSERT INTO cards \("card_id","name"\) VALUES \(\$1,\$2\) ON CONFLICT \("card_id"\) DO UPDATE SET "name" = EXCLUDED."name"`).
			WithArgs("ghost", "Ghost").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpsertCard(context.Background(), update))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewCardRepository(db, logger.Nop())

		mock.ExpectExec("INSERT INTO cards").WillReturnError(errors.New("timeout"))

		assert.ErrorIs(t, repo.UpsertCard(context.Background(), update), ErrStoreUnavailable)
	})

	t.Run("empty update never reaches the database", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewCardRepository(db, logger.Nop())

		err := repo.UpsertCard(context.Background(), models.CardUpdate{CardID: "ana"})
		assert.ErrorIs(t, err, ErrBuildingSQLQuery)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCardRepository_GetCard(t *testing.T) {
	cols := []string{"card_id", "name", "email", "whatsapp", "profile_photo", "education", "current_role",
		"bio", "payment_key", "academic_profile_url", "instagram", "linkedin", "twitter", "facebook", "github", "site"}

	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewCardRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT .* FROM cards").
			WithArgs("ana").
			WillReturnRows(sqlmock.NewRows(cols).AddRow(
				"ana", "Ana", "ana@example.com", "123", "https://cdn/ana", "", "CTO",
				"", "", "", "", "", "", "", "anagh", ""))

		card, err := repo.GetCard(context.Background(), "ana")
		require.NoError(t, err)
		assert.Equal(t, "CTO", card.CurrentRole)
		assert.Equal(t, "anagh", card.GitHub)
		assert.Equal(t, "https://cdn/ana", card.ProfilePhoto)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewCardRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT .* FROM cards").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetCard(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrCardNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewCardRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT .* FROM cards").WillReturnError(errors.New("boom"))

		_, err := repo.GetCard(context.Background(), "ana")
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})
}

func TestCardRepository_DeleteCard(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCardRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM cards").WithArgs("ana").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM cards").WithArgs("ghost").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM cards").WithArgs("ana").WillReturnError(errors.New("read-only"))

	assert.NoError(t, repo.DeleteCard(context.Background(), "ana"))
	assert.NoError(t, repo.DeleteCard(context.Background(), "ghost"), "deleting a missing card is not an error")
	assert.ErrorIs(t, repo.DeleteCard(context.Background(), "ana"), ErrStoreUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}
