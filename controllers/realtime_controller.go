package controllers

import (
	"net/http"

	"github.com/dhaval-dalia/personal-diet-tracker-master/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	RT *services.RealtimeHub
}

func NewRealtimeController(rt *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{RT: rt}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// EventsWS upgrades the connection and streams goals.updated and
// preferences.updated events until the client disconnects. The write pump
// owns the socket for writing; this handler only reads, and tears the client
// down when the read side ends.
func (rc *RealtimeController) EventsWS(c *gin.Context) {
	uid := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	cl := services.NewWSClient(uid, conn)
	rc.RT.Register(cl)
	go cl.WritePump()

	cl.ReadUntilClosed()
	rc.RT.Unregister(cl)
}
