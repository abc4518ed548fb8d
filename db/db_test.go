package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testProject struct {
	ID       uint   `gorm:"primarykey"`
	Title    string
	Category string
}

func newTestDB(t *testing.T) DB {
	t.Helper()

	database, err := New(&Config{DSN: "file::memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, database.AutoMigrate(&testProject{}))
	return database
}

// TestNewNilConfig 测试 nil 配置
func TestNewNilConfig(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrConfigNil)
}

// TestNewInvalidConfig 测试无效配置
func TestNewInvalidConfig(t *testing.T) {
	_, err := New(&Config{Driver: "oracle", DSN: "x"})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(&Config{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

// TestCRUD 测试基本读写
func TestCRUD(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	p := testProject{Title: "facade restoration", Category: "restoration"}
	require.NoError(t, database.DB(ctx).Create(&p).Error)
	assert.NotZero(t, p.ID)

	var got testProject
	require.NoError(t, database.DB(ctx).First(&got, p.ID).Error)
	assert.Equal(t, "facade restoration", got.Title)

	require.NoError(t, database.DB(ctx).Delete(&testProject{}, p.ID).Error)
	err := database.DB(ctx).First(&got, p.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// TestTransactionRollback 测试事务回滚
func TestTransactionRollback(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	rollbackErr := errors.New("rollback")
	err := database.Transaction(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := tx.Create(&testProject{Title: "ghost"}).Error; err != nil {
			return err
		}
		return rollbackErr
	})
	require.ErrorIs(t, err, rollbackErr)

	var count int64
	require.NoError(t, database.DB(ctx).Model(&testProject{}).Count(&count).Error)
	assert.Zero(t, count)
}

// TestTransactionCommit 测试事务提交
func TestTransactionCommit(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	err := database.Transaction(ctx, func(ctx context.Context, tx *gorm.DB) error {
		return tx.Create(&testProject{Title: "committed", Category: "renovation"}).Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, database.DB(ctx).Model(&testProject{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
