// Package repository 对营员、活动、报名的增删改查。
//
// 所有函数都由调用方传入 *gorm.DB，每次写操作在一个事务内完成，
// 校验或外键检查失败时不会留下任何部分写入。报名的级联删除由数据库外键负责。
package repository

import (
	"camp-signup-system/internal/global/errs"
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

const (
	mysqlErrRowIsReferenced = 1451
	mysqlErrNoReferencedRow = 1452
)

// translate 把存储层的外键错误转换为 ReferenceError
func translate(err error) error {
	if err == nil {
		return nil
	}
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) && (myErr.Number == mysqlErrNoReferencedRow || myErr.Number == mysqlErrRowIsReferenced) {
		return errs.Reference("row", 0)
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
		return errs.Reference("row", 0)
	}
	return err
}

// first 按主键查询，不存在时返回 NotFoundError
func first[T any](db *gorm.DB, entity string, id uint, dest *T) error {
	err := db.First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NotFound(entity, id)
	}
	return err
}

// exists 判断主键是否存在
func exists[T any](db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Model(new(T)).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func preload(db *gorm.DB, relations []string) *gorm.DB {
	for _, r := range relations {
		db = db.Preload(r)
	}
	return db
}
