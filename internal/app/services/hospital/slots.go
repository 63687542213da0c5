package hospital

import (
	"context"
	"fmt"
	"medibook-service/internal/pkg/constvars"
	"net/url"
)

type SlotClient struct {
	api *Client
}

func NewSlotClient(api *Client) *SlotClient {
	return &SlotClient{api: api}
}

// AvailableSlots fetches the precomputed bookable times for one (doctor, date)
// pair. Subtracting existing bookings from the availability window is the
// upstream's job and is never duplicated here.
func (c *SlotClient) AvailableSlots(ctx context.Context, token, doctorID, date string) ([]string, error) {
	path := fmt.Sprintf("%s/%s?date=%s", constvars.HospitalPathAvailableSlots, url.PathEscape(doctorID), url.QueryEscape(date))
	req, err := c.api.newRequest(ctx, constvars.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Slots []string `json:"slots"`
	}
	if err := c.api.do(req, &result, constvars.ResourceSlot); err != nil {
		return nil, err
	}
	return result.Slots, nil
}
