package handler

import (
	"net/http"
	"sync"

	"art-atlas-server/internal/modules/common/httpx"
	moduledto "art-atlas-server/internal/modules/system/dto"

	"github.com/gin-gonic/gin"
)

var initLock sync.Mutex

func (h *Handler) GetInitState(c *gin.Context) {
	httpx.OK(c, http.StatusOK, "Init state retrieved", moduledto.InitStateResponse{
		Initialized: h.systemService.IsSystemInitialized(),
	})
}

func (h *Handler) Init(c *gin.Context) {
	// 串行化初始化请求，避免创建多个管理员
	initLock.Lock()
	defer initLock.Unlock()

	var initInfo moduledto.InitRequest
	if err := c.ShouldBindJSON(&initInfo); err != nil {
		httpx.BadRequest(c)
		return
	}

	admin, err := h.systemService.InitializeSystem(initInfo)
	if err != nil {
		httpx.WriteServiceError(c, err, "Initialization failed")
		return
	}
	httpx.OK(c, http.StatusOK, "System initialized successfully", admin)
}
