package uuidver_test

import (
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/GovCraft/typeid-suffix/uuidver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMarshalText(t *testing.T) {
	id := uuidver.NewV5()

	b, err := id.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, id.String(), string(b))
}

func TestMarshalJSON(t *testing.T) {
	id, err := uuidver.NewV7()
	require.NoError(t, err)

	out, err := json.Marshal(struct {
		ID  uuidver.V7  `json:"id"`
		Nil uuidver.Nil `json:"nil"`
	}{ID: id})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":"`+id.String()+`","nil":"00000000-0000-0000-0000-000000000000"}`,
		string(out))
}

func TestValue_SQLArgument(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id, err := uuidver.NewV4()
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO ids").
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	_, err = db.Exec("INSERT INTO ids (id) VALUES (?)", id)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestField_LogsIDAndVersion(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	id, err := uuidver.NewV7()
	require.NoError(t, err)

	log.Info("created", uuidver.Field("order_id", id), zap.Object("ref", uuidver.NewV3()))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()

	order, ok := fields["order_id"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, id.String(), order["id"])
	assert.Equal(t, uint8(7), order["version"])

	ref, ok := fields["ref"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, uint8(3), ref["version"])
}
