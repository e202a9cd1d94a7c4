package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/finswitch/account-lookup/internal/domain/directory"
	"github.com/finswitch/account-lookup/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockOracleRepository creates a GormOracleRepository with a mocked SQL connection
func newMockOracleRepository(t *testing.T) (*GormOracleRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormOracleRepository(gormDB), mock, mockDB
}

func oracleRows(oracle *directory.Oracle) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "version", "name", "party_type", "currency", "party_sub_type", "type", "endpoint"}).
		AddRow(oracle.ID, oracle.Version, oracle.Name, oracle.PartyType, oracle.Currency, oracle.PartySubType, oracle.Type, oracle.Endpoint)
}

func TestNewGormOracleRepository(t *testing.T) {
	repo, _, mockDB := newMockOracleRepository(t)
	defer mockDB.Close()

	assert.NotNil(t, repo)
	assert.NotNil(t, repo.db)
}

func TestGormOracleRepository_Save(t *testing.T) {
	t.Run("saves oracle", func(t *testing.T) {
		repo, mock, mockDB := newMockOracleRepository(t)
		defer mockDB.Close()

		oracle, err := directory.NewBuiltinOracle("builtin-msisdn", "MSISDN", nil)
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO "oracles"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Save(context.Background(), oracle)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate name maps to domain error", func(t *testing.T) {
		repo, mock, mockDB := newMockOracleRepository(t)
		defer mockDB.Close()

		oracle, err := directory.NewBuiltinOracle("builtin-msisdn", "MSISDN", nil)
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO "oracles"`).
			WillReturnError(gorm.ErrDuplicatedKey)

		err = repo.Save(context.Background(), oracle)

		assert.Error(t, err)
		assert.True(t, directory.HasErrorCode(err, directory.ErrCodeOracleAlreadyExists))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOracleRepository_FindByID(t *testing.T) {
	t.Run("finds existing oracle", func(t *testing.T) {
		repo, mock, mockDB := newMockOracleRepository(t)
		defer mockDB.Close()

		oracle, err := directory.NewBuiltinOracle("builtin-msisdn", "MSISDN", nil)
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT \* FROM "oracles" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(oracle.ID, 1).
			WillReturnRows(oracleRows(oracle))

		found, err := repo.FindByID(context.Background(), oracle.ID)

		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, oracle.ID, found.ID)
		assert.Equal(t, "builtin-msisdn", found.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns nil for unknown oracle", func(t *testing.T) {
		repo, mock, mockDB := newMockOracleRepository(t)
		defer mockDB.Close()

		oracleID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "oracles" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(oracleID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		found, err := repo.FindByID(context.Background(), oracleID)

		assert.NoError(t, err)
		assert.Nil(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOracleRepository_FindForRouting(t *testing.T) {
	t.Run("prefers exact currency match", func(t *testing.T) {
		repo, mock, mockDB := newMockOracleRepository(t)
		defer mockDB.Close()

		currency := "ZAR"
		oracle, err := directory.NewBuiltinOracle("builtin-msisdn-zar", "MSISDN", &currency)
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT \* FROM "oracles" WHERE party_type = \$1 AND currency = \$2 ORDER BY .* LIMIT .*`).
			WithArgs("MSISDN", "ZAR", 1).
			WillReturnRows(oracleRows(oracle))

		found, err := repo.FindForRouting(context.Background(), "msisdn", &currency)

		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "builtin-msisdn-zar", found.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falls back to currency wildcard", func(t *testing.T) {
		repo, mock, mockDB := newMockOracleRepository(t)
		defer mockDB.Close()

		currency := "ZAR"
		oracle, err := directory.NewBuiltinOracle("builtin-msisdn", "MSISDN", nil)
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT \* FROM "oracles" WHERE party_type = \$1 AND currency = \$2 ORDER BY .* LIMIT .*`).
			WithArgs("MSISDN", "ZAR", 1).
			WillReturnError(gorm.ErrRecordNotFound)
		mock.ExpectQuery(`SELECT \* FROM "oracles" WHERE party_type = \$1 AND currency IS NULL ORDER BY .* LIMIT .*`).
			WithArgs("MSISDN", 1).
			WillReturnRows(oracleRows(oracle))

		found, err := repo.FindForRouting(context.Background(), "MSISDN", &currency)

		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "builtin-msisdn", found.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no oracle for party type is a domain error", func(t *testing.T) {
		repo, mock, mockDB := newMockOracleRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "oracles" WHERE party_type = \$1 AND currency IS NULL ORDER BY .* LIMIT .*`).
			WithArgs("IBAN", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		found, err := repo.FindForRouting(context.Background(), "IBAN", nil)

		assert.Error(t, err)
		assert.Nil(t, found)
		assert.True(t, directory.HasErrorCode(err, directory.ErrCodeOracleNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOracleRepository_Delete(t *testing.T) {
	t.Run("deletes existing oracle", func(t *testing.T) {
		repo, mock, mockDB := newMockOracleRepository(t)
		defer mockDB.Close()

		oracleID := uuid.New()

		mock.ExpectExec(`DELETE FROM "oracles" WHERE id = \$1`).
			WithArgs(oracleID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), oracleID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown oracle is a domain error", func(t *testing.T) {
		repo, mock, mockDB := newMockOracleRepository(t)
		defer mockDB.Close()

		oracleID := uuid.New()

		mock.ExpectExec(`DELETE FROM "oracles" WHERE id = \$1`).
			WithArgs(oracleID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), oracleID)

		assert.Error(t, err)
		assert.True(t, directory.HasErrorCode(err, directory.ErrCodeOracleNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOracleRepository_ExistsByName(t *testing.T) {
	t.Run("returns true when present", func(t *testing.T) {
		repo, mock, mockDB := newMockOracleRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "oracles" WHERE name = \$1`).
			WithArgs("builtin-msisdn").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByName(context.Background(), "builtin-msisdn")

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns false when absent", func(t *testing.T) {
		repo, mock, mockDB := newMockOracleRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "oracles" WHERE name = \$1`).
			WithArgs("remote-iban").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsByName(context.Background(), "remote-iban")

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOracleRepository_FindAll(t *testing.T) {
	t.Run("applies pagination and default ordering", func(t *testing.T) {
		repo, mock, mockDB := newMockOracleRepository(t)
		defer mockDB.Close()

		oracle, err := directory.NewBuiltinOracle("builtin-msisdn", "MSISDN", nil)
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT \* FROM "oracles" ORDER BY created_at desc LIMIT .*`).
			WillReturnRows(oracleRows(oracle))

		oracles, err := repo.FindAll(context.Background(), shared.Filter{Page: 1, PageSize: 20})

		assert.NoError(t, err)
		require.Len(t, oracles, 1)
		assert.Equal(t, "builtin-msisdn", oracles[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects unsafe order column", func(t *testing.T) {
		repo, mock, mockDB := newMockOracleRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "oracles" ORDER BY created_at desc LIMIT .*`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindAll(context.Background(), shared.Filter{
			Page:     1,
			PageSize: 20,
			OrderBy:  "name; DROP TABLE oracles",
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOracleRepository_Count(t *testing.T) {
	repo, mock, mockDB := newMockOracleRepository(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "oracles"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background(), shared.Filter{})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
