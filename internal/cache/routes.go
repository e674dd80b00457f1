package cache

// Affected public routes per entity type, computed in one place so
// mutation handlers do not hand-enumerate route strings.

// ForProduct lists the routes whose render depends on one product.
func ForProduct(productSlug, categorySlug string) []string {
	routes := []string{"/", "/catalog", "/product/" + productSlug, "/search"}
	if categorySlug != "" {
		routes = append(routes, "/catalog/"+categorySlug)
	}
	return routes
}

// ForCategory lists the routes whose render depends on one category.
func ForCategory(slug string) []string {
	return []string{"/", "/catalog", "/catalog/" + slug, "/search"}
}

// ForPage lists the routes whose render depends on one CMS page.
func ForPage(slug string) []string {
	return []string{"/", "/" + slug}
}

// ForBlocks lists the routes whose render depends on the home blocks.
func ForBlocks() []string {
	return []string{"/"}
}

// Menu items appear in the header of every page, so menu mutations
// call PageCache.Flush instead of a route list.
