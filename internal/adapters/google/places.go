package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

const placesSearchURL = "https://places.googleapis.com/v1/places:searchText"

const placesFieldMask = "places.id,places.displayName,places.formattedAddress," +
	"places.location,places.rating,places.userRatingCount,places.photos,nextPageToken"

// searchRadiusMeters bounds candidate search to a rectangle whose corners
// sit this far from the anchor spot.
const searchRadiusMeters = 25000

// PlacesProvider searches for candidate spots around an anchor using the
// Places text-search endpoint, paging through results by token.
type PlacesProvider struct {
	client *client
}

func NewPlacesProvider(apiKey string) *PlacesProvider {
	return &PlacesProvider{client: newClient(apiKey)}
}

type searchRequest struct {
	TextQuery           string `json:"textQuery"`
	PageToken           string `json:"pageToken,omitempty"`
	LocationRestriction struct {
		Rectangle struct {
			Low  latLng `json:"low"`
			High latLng `json:"high"`
		} `json:"rectangle"`
	} `json:"locationRestriction"`
}

type placeResult struct {
	ID          string `json:"id"`
	DisplayName struct {
		Text string `json:"text"`
	} `json:"displayName"`
	FormattedAddress string  `json:"formattedAddress"`
	Location         latLng  `json:"location"`
	Rating           float64 `json:"rating"`
	UserRatingCount  int     `json:"userRatingCount"`
	Photos           []struct {
		Name string `json:"name"`
	} `json:"photos"`
}

type searchResponse struct {
	Places        []placeResult `json:"places"`
	NextPageToken string        `json:"nextPageToken"`
}

// SearchSpots returns one page of candidates for the theme near the
// anchor. Pass the returned cursor back to continue from the next page;
// an empty cursor means the results are exhausted.
func (p *PlacesProvider) SearchSpots(
	ctx context.Context,
	theme domain.Category,
	anchor *domain.Spot,
	cursor string,
) (ports.CandidatePage, error) {
	rect := domain.SearchRect(anchor.Location, searchRadiusMeters)

	req := searchRequest{
		TextQuery: string(theme),
		PageToken: cursor,
	}
	req.LocationRestriction.Rectangle.Low = latLng{Latitude: rect.Low.Lat, Longitude: rect.Low.Lon}
	req.LocationRestriction.Rectangle.High = latLng{Latitude: rect.High.Lat, Longitude: rect.High.Lon}

	payload, err := json.Marshal(req)
	if err != nil {
		return ports.CandidatePage{}, fmt.Errorf("marshal search request: %w", err)
	}

	resp, err := p.client.doWithRetry(ctx, func() (*http.Request, error) {
		return p.client.newRequest(ctx, "POST", placesSearchURL, placesFieldMask, bytes.NewReader(payload))
	})
	if err != nil {
		return ports.CandidatePage{}, fmt.Errorf("places search request: %w", err)
	}
	defer resp.Body.Close()

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.CandidatePage{}, fmt.Errorf("decode search response: %w", err)
	}

	spots := make([]*domain.Spot, 0, len(body.Places))
	for _, pl := range body.Places {
		if pl.ID == "" {
			continue
		}
		spot := &domain.Spot{
			SpotID:  pl.ID,
			Name:    pl.DisplayName.Text,
			Address: pl.FormattedAddress,
			Location: domain.Coordinates{
				Lon: pl.Location.Longitude,
				Lat: pl.Location.Latitude,
			},
			Categories:      []domain.Category{theme},
			Rating:          pl.Rating,
			UserRatingCount: pl.UserRatingCount,
		}
		if len(pl.Photos) > 0 {
			spot.PhotoReference = pl.Photos[0].Name
		}
		spots = append(spots, spot)
	}

	return ports.CandidatePage{
		Spots:      spots,
		NextCursor: body.NextPageToken,
	}, nil
}
