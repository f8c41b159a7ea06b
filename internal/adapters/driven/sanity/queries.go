package sanity

import (
	"fmt"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

// Projections normalise the three document types onto one shape so a
// single raw struct decodes them all.
const (
	postProjection = `{
  _id,
  _type,
  _createdAt,
  title,
  "slug": slug.current,
  "description": coalesce(excerpt, seo.metaDescription),
  "author": author->name,
  mainImage{asset, alt},
  "categories": categories[]->title,
  publishedAt,
  isFeatured,
  readingTime,
  "noIndex": seo.noIndex,
  body
}`

	workProjection = `{
  _id,
  _type,
  _createdAt,
  "title": name,
  "slug": slug.current,
  "description": shortDescription,
  "body": longDescription,
  clientName,
  url,
  tags,
  techTags,
  mainImage{asset, alt},
  "category": category{_ref, "title": @->title},
  order,
  "noIndex": seo.noIndex
}`

	practiceProjection = `{
  _id,
  _type,
  _createdAt,
  "title": name,
  "slug": slug.current,
  "description": shortDescription,
  "body": longDescription,
  url,
  repositoryUrl,
  tags,
  techTags,
  mainImage{asset, alt},
  "category": category{_ref, "title": @->title},
  lastUpdated,
  progress,
  "noIndex": seo.noIndex
}`
)

func projection(kind domain.ContentKind) (string, error) {
	switch kind {
	case domain.KindPost:
		return postProjection, nil
	case domain.KindWork:
		return workProjection, nil
	case domain.KindPractice:
		return practiceProjection, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedKind, kind)
	}
}

// ListQuery returns the query for every published document of a kind.
// Drafts are excluded; ordering is left to the listing services.
func ListQuery(kind domain.ContentKind) (string, error) {
	proj, err := projection(kind)
	if err != nil {
		return "", err
	}
	return `*[_type == $type && !(_id in path("drafts.**"))] ` + proj, nil
}

// SlugQuery returns the query for one document by slug.
func SlugQuery(kind domain.ContentKind) (string, error) {
	proj, err := projection(kind)
	if err != nil {
		return "", err
	}
	return `*[_type == $type && slug.current == $slug && !(_id in path("drafts.**"))][0] ` + proj, nil
}
