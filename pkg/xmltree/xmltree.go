// Package xmltree implements the element tree operations every entity codec
// relies on: immediate-child selection by qualified name, direct text
// extraction, attribute lookup and namespaced element creation.
//
// All functions operate on [github.com/beevik/etree] nodes.
package xmltree

import (
	"strings"

	"github.com/beevik/etree"
)

const xmlnsAttr = "xmlns"

// SelectChildren returns the immediate element children of el whose namespace
// URI and local name both equal the given ones, in document order.
// The result is never nil.
func SelectChildren(el *etree.Element, namespace, local string) []*etree.Element {
	matches := []*etree.Element{}
	if el == nil {
		return matches
	}
	for _, tok := range el.Child {
		child, ok := tok.(*etree.Element)
		if !ok || child.Tag != local {
			continue
		}
		if child.NamespaceURI() != namespace {
			continue
		}
		matches = append(matches, child)
	}
	return matches
}

// FirstChild returns the first match of SelectChildren, or nil.
func FirstChild(el *etree.Element, namespace, local string) *etree.Element {
	if kids := SelectChildren(el, namespace, local); len(kids) > 0 {
		return kids[0]
	}
	return nil
}

// ChildByLocalName returns the first immediate element child with the given
// local name in any namespace, or nil. SOAP fault members are unqualified and
// may inherit whatever default namespace the responder chose.
func ChildByLocalName(el *etree.Element, local string) *etree.Element {
	if el == nil {
		return nil
	}
	for _, tok := range el.Child {
		if child, ok := tok.(*etree.Element); ok && child.Tag == local {
			return child
		}
	}
	return nil
}

// Text concatenates the direct text children of el and trims surrounding
// whitespace. Text inside descendant elements is not included.
func Text(el *etree.Element) string {
	if el == nil {
		return ""
	}
	var b strings.Builder
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			b.WriteString(cd.Data)
		}
	}
	return strings.TrimSpace(b.String())
}

// LookupAttr returns the value of the attribute named key ("name" or
// "prefix:name") and whether it is present on el.
func LookupAttr(el *etree.Element, key string) (string, bool) {
	if el == nil {
		return "", false
	}
	space, local := splitName(key)
	for _, a := range el.Attr {
		if a.Space == space && a.Key == local {
			return a.Value, true
		}
	}
	return "", false
}

// Attr returns the value of the attribute named key, or "" when it is absent.
func Attr(el *etree.Element, key string) string {
	v, _ := LookupAttr(el, key)
	return v
}

// CreateElement appends a new prefix:local element to parent and returns it.
// The prefix is declared on the new element unless parent or one of its
// ancestors already binds it to namespace.
func CreateElement(parent *etree.Element, namespace, prefix, local string) *etree.Element {
	tag := local
	if prefix != "" {
		tag = prefix + ":" + local
	}

	el := parent.CreateElement(tag)
	if uri, ok := Resolve(parent, prefix); !ok || uri != namespace {
		if prefix == "" {
			el.CreateAttr(xmlnsAttr, namespace)
		} else {
			el.CreateAttr(xmlnsAttr+":"+prefix, namespace)
		}
	}
	return el
}

// CreateText appends a text node to el.
func CreateText(el *etree.Element, text string) {
	el.CreateText(text)
}

// Resolve finds the namespace URI bound to prefix ("" for the default
// namespace) on el or its ancestors.
func Resolve(el *etree.Element, prefix string) (string, bool) {
	for e := el; e != nil; e = e.Parent() {
		for _, a := range e.Attr {
			if prefix == "" && a.Space == "" && a.Key == xmlnsAttr {
				return a.Value, true
			}
			if prefix != "" && a.Space == xmlnsAttr && a.Key == prefix {
				return a.Value, true
			}
		}
	}
	return "", false
}

func splitName(key string) (space, local string) {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i], key[i+1:]
	}
	return "", key
}
