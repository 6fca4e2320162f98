package planner

import (
	"hash/fnv"
	"sort"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/quantfall/resolution/model"
	"github.com/quantfall/resolution/os"
)

// ResolverNode is one node of the resolver tree (component C): a nested
// mapping attribute-name -> subtree, built by inserting each applicable
// resolver's sorted attribute sequence as a path and reusing shared
// prefixes.
type ResolverNode struct {
	Children map[string]*ResolverNode
}

func (n *ResolverNode) child(name string) *ResolverNode {
	if n.Children == nil {
		n.Children = make(map[string]*ResolverNode)
	}
	c, ok := n.Children[name]
	if !ok {
		c = &ResolverNode{}
		n.Children[name] = c
	}
	return c
}

func (n *ResolverNode) sortedChildNames() []string {
	names := make([]string, 0, len(n.Children))
	for name := range n.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildResolverTree implements component C Steps 1-3. applicable is the
// set of resolver names currently in play (R from §4.D Step 1).
func BuildResolverTree(applicable map[string][]string) *ResolverNode {
	counts := make(map[string]int)
	for _, attrs := range applicable {
		for _, a := range attrs {
			counts[a]++
		}
	}

	names := make([]string, 0, len(applicable))
	for name := range applicable {
		names = append(names, name)
	}
	sort.Strings(names)

	root := &ResolverNode{}
	for _, resolverName := range names {
		attrs := append([]string(nil), applicable[resolverName]...)
		sort.SliceStable(attrs, func(i, j int) bool {
			ci, cj := counts[attrs[i]], counts[attrs[j]]
			if ci != cj {
				return ci > cj
			}
			return attrs[i] < attrs[j]
		})

		node := root
		for _, a := range attrs {
			node = node.child(a)
		}
	}

	return root
}

// PopulateResolversFilterTree implements component C Step 4: it emits the
// nested should/filter clause for tree given the current attribute values.
// A nil result stands for the spec's "{}" (no constraint contributed).
func PopulateResolversFilterTree(m *model.Model, idx *model.Index, tree *ResolverNode, attributes map[string]*model.RuntimeAttribute) (*os.Query, error) {
	var childClauses []os.Query

	for _, a := range tree.sortedChildNames() {
		fieldClauses, err := MakeIndexFieldClauses(m, idx, attributes, a, Should)
		if err != nil {
			return nil, err
		}
		if len(fieldClauses) == 0 {
			continue
		}
		iClause := wrapMulti(Should, fieldClauses)

		childFilter, err := PopulateResolversFilterTree(m, idx, tree.Children[a], attributes)
		if err != nil {
			return nil, err
		}

		var emit os.Query
		if childFilter != nil {
			emit = os.Query{Bool: &os.Bool{Filter: []os.Query{*iClause, *childFilter}}}
		} else {
			emit = *iClause
		}
		childClauses = append(childClauses, emit)
	}

	switch len(childClauses) {
	case 0:
		return nil, nil
	case 1:
		return &os.Query{Bool: &os.Bool{Filter: childClauses}}, nil
	default:
		return &os.Query{Bool: &os.Bool{Should: childClauses}}, nil
	}
}

// ResolverTreeCache caches the unpopulated tree built in BuildResolverTree,
// keyed by (model name, sorted applicable resolver names). The tree's
// shape depends only on the model and which resolvers are applicable, not
// on attribute values, so it is safe to reuse across hops and across jobs
// sharing a planner. A per-key mutex shard keeps concurrent callers from
// building the same tree twice.
type ResolverTreeCache struct {
	cache *lru.LRU[string, *ResolverNode]
	once  sync.Once
	locks [256]sync.Mutex
}

func (c *ResolverTreeCache) init() {
	c.once.Do(func() {
		c.cache = lru.NewLRU[string, *ResolverNode](1024, nil, time.Hour)
	})
}

func (c *ResolverTreeCache) lockFor(key string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return &c.locks[h.Sum32()%uint32(len(c.locks))]
}

// Build returns the cached tree for (m.Name, applicable) if present,
// otherwise builds, caches and returns it.
func (c *ResolverTreeCache) Build(m *model.Model, applicable map[string][]string) *ResolverNode {
	c.init()

	key := cacheKey(m.Name, applicable)
	if tree, ok := c.cache.Get(key); ok {
		return tree
	}

	lock := c.lockFor(key)
	lock.Lock()
	defer lock.Unlock()

	if tree, ok := c.cache.Get(key); ok {
		return tree
	}

	tree := BuildResolverTree(applicable)
	c.cache.Add(key, tree)
	return tree
}

func cacheKey(modelName string, applicable map[string][]string) string {
	names := make([]string, 0, len(applicable))
	for name := range applicable {
		names = append(names, name)
	}
	sort.Strings(names)
	return modelName + "::" + strings.Join(names, ",")
}
