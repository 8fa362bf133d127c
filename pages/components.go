package pages

import (
	"fmt"
	"strings"

	"directory-server/models/business"
	services "directory-server/service"
)

const DEFAULT_LIST_TITLE = "Electrolysis Providers"
const EMPTY_LIST_MESSAGE = "No electrolysis providers found in this area."

// RatingView is the star row plus its label.
type RatingView struct {
	Stars []services.StarState
	Label string
}

// BusinessCardView is one entry of a business list.
type BusinessCardView struct {
	Key     string
	Name    string
	Rating  *RatingView
	Address string
	Phone   string
	Summary string
	URL     string
}

// BusinessListView is a titled, ranked list of business cards.
type BusinessListView struct {
	Title        string
	Cards        []BusinessCardView
	EmptyMessage string
}

// ratingView returns nil for unrated businesses; the stars are not shown.
func ratingView(b *business.BusinessListing) *RatingView {
	if b.Rating <= 0 {
		return nil
	}
	return &RatingView{
		Stars: services.RenderStars(b.Rating),
		Label: services.RatingLabel(b.Rating, b.Reviews),
	}
}

func businessURL(slug string) string {
	return "/business/" + slug
}

func cardSummary(b *business.BusinessListing) string {
	if b.Description != "" {
		return b.Description
	}
	summary := fmt.Sprintf("Professional electrolysis hair removal services offered by %s.", b.Name)
	if len(b.Services) > 0 {
		summary += fmt.Sprintf(" Specializing in %s.", strings.Join(b.Services, ", "))
	}
	return summary
}

func composeCard(b *business.BusinessListing) BusinessCardView {
	return BusinessCardView{
		Key:     b.ID,
		Name:    b.Name,
		Rating:  ratingView(b),
		Address: b.FullAddress(),
		Phone:   b.Phone,
		Summary: cardSummary(b),
		URL:     businessURL(b.Slug),
	}
}

// ComposeBusinessList ranks businesses and turns them into cards. An empty
// title renders no heading; pass DEFAULT_LIST_TITLE for the stock one.
// limit <= 0 means no limit.
func ComposeBusinessList(businesses []business.BusinessListing, title string, limit int) BusinessListView {
	ranked := services.RankBusinesses(businesses, limit)
	cards := make([]BusinessCardView, 0, len(ranked))
	for i := range ranked {
		cards = append(cards, composeCard(&ranked[i]))
	}
	return BusinessListView{Title: title, Cards: cards, EmptyMessage: EMPTY_LIST_MESSAGE}
}
