package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-business-card/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	cardsTable = "cards"
	usersTable = "users"
)

// cardColumns lists the card columns in scan order. Identifiers are quoted
// because current_role is a reserved word in PostgreSQL.
var cardColumns = []string{
	column(models.FieldCardID),
	column(models.FieldName),
	column(models.FieldEmail),
	column(models.FieldWhatsApp),
	column(models.FieldProfilePhoto),
	column(models.FieldEducation),
	column(models.FieldCurrentRole),
	column(models.FieldBio),
	column(models.FieldPaymentKey),
	column(models.FieldAcademicProfileURL),
	column(models.FieldInstagram),
	column(models.FieldLinkedIn),
	column(models.FieldTwitter),
	column(models.FieldFacebook),
	column(models.FieldGitHub),
	column(models.FieldSite),
}

var userColumns = []string{
	column(models.FieldEmail),
	column(models.FieldName),
	column(models.FieldPassword),
	column(models.FieldCardID),
	column(models.FieldPhone),
}

func column(name string) string {
	return `"` + name + `"`
}

func cardValues(c models.Card) []any {
	return []any{
		c.CardID, c.Name, c.Email, c.WhatsApp, c.ProfilePhoto,
		c.Education, c.CurrentRole, c.Bio, c.PaymentKey, c.AcademicProfileURL,
		c.Instagram, c.LinkedIn, c.Twitter, c.Facebook, c.GitHub, c.Site,
	}
}

func cardScanTargets(c *models.Card) []any {
	return []any{
		&c.CardID, &c.Name, &c.Email, &c.WhatsApp, &c.ProfilePhoto,
		&c.Education, &c.CurrentRole, &c.Bio, &c.PaymentKey, &c.AcademicProfileURL,
		&c.Instagram, &c.LinkedIn, &c.Twitter, &c.Facebook, &c.GitHub, &c.Site,
	}
}

func buildInsertCardQuery(b sq.StatementBuilderType, card models.Card) (string, []any, error) {
	query, args, err := b.Insert(cardsTable).
		Columns(cardColumns...).
		Values(cardValues(card)...).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateCardQuery sets only the supplied fields. card_id is never
// updated.
func buildUpdateCardQuery(b sq.StatementBuilderType, update models.CardUpdate) (string, []any, error) {
	builder := b.Update(cardsTable)
	for _, f := range update.Fields() {
		builder = builder.Set(column(f.Name), f.Value)
	}

	query, args, err := builder.
		Where(sq.Eq{column(models.FieldCardID): update.CardID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpsertCardQuery inserts a card holding only the supplied fields, or
// sets those fields on the existing row. Columns left out of the insert take
// their empty defaults. Both PostgreSQL and SQLite accept this ON CONFLICT form.
func buildUpsertCardQuery(b sq.StatementBuilderType, update models.CardUpdate) (string, []any, error) {
	fields := update.Fields()
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("%w: nothing to update", ErrBuildingSQLQuery)
	}

	columns := []string{column(models.FieldCardID)}
	values := []any{update.CardID}
	sets := make([]string, 0, len(fields))
	for _, f := range fields {
		columns = append(columns, column(f.Name))
		values = append(values, f.Value)
		sets = append(sets, column(f.Name)+" = EXCLUDED."+column(f.Name))
	}

	query, args, err := b.Insert(cardsTable).
		Columns(columns...).
		Values(values...).
		Suffix("ON CONFLICT (" + column(models.FieldCardID) + ") DO UPDATE SET " + strings.Join(sets, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectCardQuery(b sq.StatementBuilderType, cardID string) (string, []any, error) {
	query, args, err := b.Select(cardColumns...).
		From(cardsTable).
		Where(sq.Eq{column(models.FieldCardID): cardID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteCardQuery(b sq.StatementBuilderType, cardID string) (string, []any, error) {
	query, args, err := b.Delete(cardsTable).
		Where(sq.Eq{column(models.FieldCardID): cardID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertUserQuery stores an absent phone as NULL so that the UNIQUE
// constraint on phone ignores it.
func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	phone := sql.NullString{String: user.Phone, Valid: user.Phone != ""}

	query, args, err := b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.Email, user.Name, user.Password, user.CardID, phone).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column(models.FieldEmail): email}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
