package catalogControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Tuka1911/dymokminiapp/catalog"
	"github.com/Tuka1911/dymokminiapp/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type searchMessage struct {
	Search string `json:"search"`
	Sort   string `json:"sort"`
}

// GET /products/live
//
// Clients stream keystrokes as {"search": ..., "sort": ...} messages; the
// server recomputes the view after the 300 ms quiet period and pushes the
// filtered product list back. Teardown of the connection cancels any
// pending recomputation.
func LiveSearch(provider catalog.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		views := make(chan []models.Product, 8)
		filter := catalog.NewLiveFilter(provider, catalog.DefaultQuietPeriod, func(view []models.Product) {
			select {
			case views <- view:
			default: // client is not keeping up, skip the stale view
			}
		})
		defer filter.Close()

		done := make(chan struct{})
		defer close(done)
		go func() {
			for {
				select {
				case view := <-views:
					if err := conn.WriteJSON(view); err != nil {
						return
					}
				case <-done:
					return
				}
			}
		}()

		// Unfiltered catalog before the first keystroke.
		views <- filter.Results()

		for {
			var msg searchMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			filter.SetSort(catalog.ParseSortOption(msg.Sort))
			filter.SetTerm(msg.Search)
		}
	}
}
