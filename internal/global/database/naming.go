package database

import (
	"fmt"

	"gorm.io/gorm/schema"
)

// NamingStrategy 约束命名规则固定，保证迁移差异稳定：
//
//	ix_<table>_<column>
//	uq_<table>_<column>
//	ck_<table>_<name>
//	fk_<table>_<column>_<referred_table>
type NamingStrategy struct {
	schema.NamingStrategy
}

func (ns NamingStrategy) IndexName(table, column string) string {
	return ns.formatName("ix", table, ns.toDBName(column))
}

func (ns NamingStrategy) UniqueName(table, column string) string {
	return ns.formatName("uq", table, ns.toDBName(column))
}

func (ns NamingStrategy) CheckerName(table, column string) string {
	return ns.formatName("ck", table, column)
}

// RelationshipFKName 以外键所在表、外键列和被引用表命名，
// has many 与对应的 belongs to 得到同一个名字
func (ns NamingStrategy) RelationshipFKName(rel schema.Relationship) string {
	if len(rel.References) == 0 || rel.References[0].ForeignKey == nil || rel.References[0].PrimaryKey == nil {
		return ns.NamingStrategy.RelationshipFKName(rel)
	}
	ref := rel.References[0]
	if ref.ForeignKey.Schema == nil || ref.PrimaryKey.Schema == nil {
		return ns.NamingStrategy.RelationshipFKName(rel)
	}
	return fmt.Sprintf("fk_%s_%s_%s", ref.ForeignKey.Schema.Table, ref.ForeignKey.DBName, ref.PrimaryKey.Schema.Table)
}

func (ns NamingStrategy) toDBName(column string) string {
	return ns.NamingStrategy.ColumnName("", column)
}

func (ns NamingStrategy) formatName(prefix, table, name string) string {
	return fmt.Sprintf("%s_%s_%s", prefix, table, name)
}
