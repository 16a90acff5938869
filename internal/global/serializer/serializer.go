// Package serializer 按字段白名单把记录渲染成树形结构。
//
// 关系图 Camper -> Signup -> Activity -> Signup -> ... 存在环，渲染深度由白名单
// 决定：白名单中以关系名结尾的路径只渲染该关系记录的标量字段，不再展开。
// 记录还可以声明排除规则（"-signups.camper"），从自身出发时这些边永远不会被渲染。
package serializer

import "strings"

// Serializable 可被渲染的记录
type Serializable interface {
	// Attrs 标量字段，键为输出名
	Attrs() map[string]any
	// Relations 已加载的关系
	Relations() map[string]Relation
	// SerializeRules 排除规则，形如 "-signups.camper"
	SerializeRules() []string
}

// Relation 单个或多个关联记录
type Relation struct {
	one    Serializable
	many   []Serializable
	isMany bool
}

// One 单个关联记录，s 为 nil 时渲染为 null
func One(s Serializable) Relation {
	return Relation{one: s}
}

// Many 把记录切片包装成关系
func Many[T any, PT interface {
	*T
	Serializable
}](items []T) Relation {
	out := make([]Serializable, len(items))
	for i := range items {
		out[i] = PT(&items[i])
	}
	return Relation{many: out, isMany: true}
}

// tree 路径树，值为 nil 表示叶子
type tree map[string]tree

func parseOnly(paths []string) tree {
	root := tree{}
	for _, p := range paths {
		parts := strings.Split(strings.TrimSpace(p), ".")
		node := root
		for i, part := range parts {
			if part == "" {
				break
			}
			if i == len(parts)-1 {
				if _, ok := node[part]; !ok {
					node[part] = nil
				}
				break
			}
			child := node[part]
			if child == nil {
				child = tree{}
				node[part] = child
			}
			node = child
		}
	}
	return root
}

// addExclusions 合并排除规则，叶子（整条边被排除）优先
func addExclusions(root tree, rules []string) tree {
	out := tree{}
	for k, v := range root {
		out[k] = v
	}
	for _, r := range rules {
		parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(r), "-"), ".")
		node := out
		for i, part := range parts {
			if part == "" {
				break
			}
			if i == len(parts)-1 {
				node[part] = nil
				break
			}
			child, ok := node[part]
			if ok && child == nil {
				break
			}
			if !ok {
				child = tree{}
			} else {
				// 复制一份，避免修改上层传下来的树
				cp := tree{}
				for k, v := range child {
					cp[k] = v
				}
				child = cp
			}
			node[part] = child
			node = child
		}
	}
	return out
}

func attrTree(s Serializable) tree {
	t := tree{}
	for k := range s.Attrs() {
		t[k] = nil
	}
	return t
}

func render(s Serializable, only, exclude tree) map[string]any {
	exclude = addExclusions(exclude, s.SerializeRules())
	attrs := s.Attrs()
	rels := s.Relations()

	out := make(map[string]any, len(only))
	for key, sub := range only {
		ex, excluded := exclude[key]
		if excluded && ex == nil {
			continue
		}
		if v, ok := attrs[key]; ok {
			out[key] = v
			continue
		}
		rel, ok := rels[key]
		if !ok {
			continue
		}
		if rel.isMany {
			list := make([]map[string]any, 0, len(rel.many))
			for _, item := range rel.many {
				list = append(list, renderChild(item, sub, ex))
			}
			out[key] = list
			continue
		}
		if rel.one == nil {
			out[key] = nil
			continue
		}
		out[key] = renderChild(rel.one, sub, ex)
	}
	return out
}

func renderChild(s Serializable, only, exclude tree) map[string]any {
	if len(only) == 0 {
		only = attrTree(s)
	}
	return render(s, only, exclude)
}

// Only 只渲染白名单中的字段，路径用 "." 分隔
func Only(s Serializable, fields ...string) map[string]any {
	return render(s, parseOnly(fields), nil)
}

// OnlyMany 对切片中的每条记录调用 Only
func OnlyMany[T any, PT interface {
	*T
	Serializable
}](items []T, fields ...string) []map[string]any {
	only := parseOnly(fields)
	out := make([]map[string]any, 0, len(items))
	for i := range items {
		out = append(out, render(PT(&items[i]), only, nil))
	}
	return out
}
