package ipreputation

// binaryTrie matches IPv4 addresses against a set of prefixes, one bit per level.
type binaryTrie struct {
	root *node
}

type node struct {
	match bool
	one   *node
	zero  *node
}

func newBinaryTrie() *binaryTrie {
	return &binaryTrie{root: &node{}}
}

func (t *binaryTrie) insert(prefix uint32, bits int) {
	n := t.root
	for depth := 0; depth < bits; depth++ {
		if n.match {
			// A shorter prefix already covers this one.
			return
		}

		if bitAt(prefix, depth) == 1 {
			if n.one == nil {
				n.one = &node{}
			}
			n = n.one
		} else {
			if n.zero == nil {
				n.zero = &node{}
			}
			n = n.zero
		}
	}
	n.match = true
}

func (t *binaryTrie) match(ip uint32) bool {
	n := t.root
	for depth := 0; depth < 32; depth++ {
		if n.match {
			return true
		}

		if bitAt(ip, depth) == 1 {
			n = n.one
		} else {
			n = n.zero
		}
		if n == nil {
			return false
		}
	}
	return n.match
}

// bitAt returns the bit at index i, counting from the most significant bit.
func bitAt(num uint32, i int) uint32 {
	return (num >> uint(31-i)) & 1
}
