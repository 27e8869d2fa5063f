package storefront

import "github.com/pthm/hxshop"

// Connection is a GraphQL list of nodes.
type Connection[T any] struct {
	Nodes []T `json:"nodes"`
}

// PriceRange holds the lowest variant price of a product.
type PriceRange struct {
	MinVariantPrice *hxshop.Money `json:"minVariantPrice"`
}

// ProductNode is a product as returned by the ProductDetails fragment.
type ProductNode struct {
	ID                  string                   `json:"id"`
	Title               string                   `json:"title"`
	Handle              string                   `json:"handle"`
	Vendor              string                   `json:"vendor"`
	PriceRange          PriceRange               `json:"priceRange"`
	CompareAtPriceRange PriceRange               `json:"compareAtPriceRange"`
	Images              Connection[hxshop.Image] `json:"images"`
}

// Product converts n to the catalog model.
func (n ProductNode) Product() hxshop.Product {
	p := hxshop.Product{
		ID:     n.ID,
		Title:  n.Title,
		Handle: n.Handle,
		Vendor: n.Vendor,
	}
	if n.PriceRange.MinVariantPrice != nil {
		p.Price = *n.PriceRange.MinVariantPrice
	}
	if m := n.CompareAtPriceRange.MinVariantPrice; m != nil {
		cp := *m
		p.CompareAtPrice = &cp
	}
	if len(n.Images.Nodes) > 0 {
		img := n.Images.Nodes[0]
		p.Image = &img
	}
	return p
}

// CollectionNode is a collection as returned by the FeaturedCollection
// fragment, optionally with its products.
type CollectionNode struct {
	ID       string                  `json:"id"`
	Title    string                  `json:"title"`
	Handle   string                  `json:"handle"`
	Image    *hxshop.Image           `json:"image"`
	Products Connection[ProductNode] `json:"products"`
}

// Collection converts n to the catalog model.
func (n CollectionNode) Collection() *hxshop.Collection {
	c := &hxshop.Collection{
		ID:     n.ID,
		Title:  n.Title,
		Handle: n.Handle,
		Image:  n.Image,
	}
	if len(n.Products.Nodes) > 0 {
		c.Products = make([]hxshop.Product, 0, len(n.Products.Nodes))
		for _, pn := range n.Products.Nodes {
			c.Products = append(c.Products, pn.Product())
		}
	}
	return c
}
