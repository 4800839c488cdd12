package api

import (
	"net/http"
	"strconv"

	"atolye/database"
	"atolye/models"

	"github.com/gin-gonic/gin"
)

// MenuHandler manages the two-level storefront navigation.
type MenuHandler struct{}

func NewMenuHandler() *MenuHandler {
	return &MenuHandler{}
}

// MenuTreeItem is a navigation node as the storefront renders it.
type MenuTreeItem struct {
	ID       uint           `json:"id"`
	Name     string         `json:"name"`
	Link     string         `json:"link"`
	Position int            `json:"position"`
	Children []MenuTreeItem `json:"children,omitempty"`
}

// loadMenuItems reads the full flat collection in display order: position
// ascending, id as the tie-breaker.
func loadMenuItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := database.DB.Order("position ASC, id ASC").Find(&items).Error
	return items, err
}

// PublicMenu returns the active navigation as a two-level tree.
// @Summary Storefront navigation
// @Description Active menu entries as a two-level tree ordered by position
// @Tags Storefront
// @Produce json
// @Success 200 {object} map[string]interface{} "navigation tree"
// @Router /api/v1/menu [get]
func (h *MenuHandler) PublicMenu(c *gin.Context) {
	items, err := loadMenuItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Menü yüklenemedi")})
		return
	}

	var tree []MenuTreeItem
	for _, top := range models.SiblingsOf(items, nil) {
		if !top.IsActive {
			continue
		}
		node := MenuTreeItem{ID: top.ID, Name: top.Name, Link: top.Link, Position: top.Position}
		parentID := top.ID
		for _, child := range models.SiblingsOf(items, &parentID) {
			if !child.IsActive {
				continue
			}
			node.Children = append(node.Children, MenuTreeItem{
				ID: child.ID, Name: child.Name, Link: child.Link, Position: child.Position,
			})
		}
		tree = append(tree, node)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": tree})
}

// List returns every menu item, active or not, flat and in display order. The
// admin list dims inactive entries instead of hiding them.
// @Summary Menu item list
// @Tags Admin-Menu
// @Produce json
// @Success 200 {object} map[string]interface{} "flat ordered list"
// @Router /admin/menus [get]
func (h *MenuHandler) List(c *gin.Context) {
	items, err := loadMenuItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Menü yüklenemedi")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}

type MenuCreateRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Link     string `json:"link" binding:"required,min=1,max=255"`
	ParentID *uint  `json:"parent_id"`
	IsActive *bool  `json:"is_active"`
}

type MenuUpdateRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Link     *string `json:"link" binding:"omitempty,min=1,max=255"`
	ParentID *uint   `json:"parent_id"`
	// ClearParent promotes a child back to top level. A separate flag because
	// an absent parent_id already means "leave the parent alone".
	ClearParent bool  `json:"clear_parent"`
	IsActive    *bool `json:"is_active"`
}

// checkParent verifies that parentID points at an existing top-level item.
// Only one level of nesting is supported.
func checkParent(parentID uint) (string, bool) {
	var parent models.MenuItem
	if err := database.DB.First(&parent, parentID).Error; err != nil {
		return "Üst menü bulunamadı", false
	}
	if parent.ParentID != nil {
		return "Menü en fazla iki seviye olabilir", false
	}
	return "", true
}

// Create adds a menu item. Its position is the current maximum position among
// all items plus 10; the gap allows manual reinsertion without renumbering.
// @Summary Create menu item
// @Tags Admin-Menu
// @Accept json
// @Produce json
// @Param request body MenuCreateRequest true "menu item"
// @Success 200 {object} map[string]interface{} "created item"
// @Failure 400 {object} map[string]interface{} "validation error"
// @Router /admin/menus [post]
func (h *MenuHandler) Create(c *gin.Context) {
	var req MenuCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": SafeErrorMessage(err, "Geçersiz istek")})
		return
	}
	if req.ParentID != nil {
		if msg, ok := checkParent(*req.ParentID); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
			return
		}
	}

	items, err := loadMenuItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Menü yüklenemedi")})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	item := models.MenuItem{
		Name:     req.Name,
		Link:     req.Link,
		ParentID: req.ParentID,
		Position: models.NextPosition(items),
		IsActive: isActive,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Menü öğesi oluşturulamadı")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Menü öğesi oluşturuldu", "data": item})
}

// Update edits a menu item in place.
// @Summary Update menu item
// @Tags Admin-Menu
// @Accept json
// @Produce json
// @Param id path int true "menu item id"
// @Param request body MenuUpdateRequest true "fields to change"
// @Success 200 {object} map[string]interface{} "updated item"
// @Failure 404 {object} map[string]interface{} "unknown item"
// @Router /admin/menus/{id} [put]
func (h *MenuHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Geçersiz ID"})
		return
	}
	var req MenuUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": SafeErrorMessage(err, "Geçersiz istek")})
		return
	}
	var item models.MenuItem
	if err := database.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Menü öğesi bulunamadı"})
		return
	}
	if req.ParentID != nil && !req.ClearParent {
		if *req.ParentID == uint(id) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Bir menü kendi üst menüsü olamaz"})
			return
		}
		// Items with children stay top level, otherwise their subtree would
		// exceed two levels.
		var childCount int64
		database.DB.Model(&models.MenuItem{}).Where("parent_id = ?", id).Count(&childCount)
		if childCount > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Alt menüleri olan bir öğe taşınamaz"})
			return
		}
		if msg, ok := checkParent(*req.ParentID); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
			return
		}
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Link != nil {
		updates["link"] = *req.Link
	}
	if req.ClearParent {
		updates["parent_id"] = nil
	} else if req.ParentID != nil {
		updates["parent_id"] = *req.ParentID
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Menü öğesi güncellenemedi")})
			return
		}
	}
	database.DB.First(&item, item.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Menü öğesi güncellendi", "data": item})
}

// Delete removes a menu item. Items that still have children are rejected;
// the children must be removed or re-parented first.
// @Summary Delete menu item
// @Tags Admin-Menu
// @Produce json
// @Param id path int true "menu item id"
// @Success 200 {object} map[string]interface{} "deleted"
// @Failure 400 {object} map[string]interface{} "item still has children"
// @Router /admin/menus/{id} [delete]
func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Geçersiz ID"})
		return
	}
	var item models.MenuItem
	if err := database.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Menü öğesi bulunamadı"})
		return
	}
	var childCount int64
	if err := database.DB.Model(&models.MenuItem{}).Where("parent_id = ?", id).Count(&childCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Sorgu başarısız")})
		return
	}
	if childCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Önce alt menü öğelerini silin"})
		return
	}
	if err := database.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Menü öğesi silinemedi")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Menü öğesi silindi"})
}

// MoveUp swaps the item one slot earlier among its siblings.
// @Summary Move menu item up
// @Tags Admin-Menu
// @Produce json
// @Param id path int true "menu item id"
// @Success 200 {object} map[string]interface{} "full list after the move"
// @Router /admin/menus/{id}/move-up [post]
func (h *MenuHandler) MoveUp(c *gin.Context) {
	h.move(c, -1)
}

// MoveDown swaps the item one slot later among its siblings.
// @Summary Move menu item down
// @Tags Admin-Menu
// @Produce json
// @Param id path int true "menu item id"
// @Success 200 {object} map[string]interface{} "full list after the move"
// @Router /admin/menus/{id}/move-down [post]
func (h *MenuHandler) MoveDown(c *gin.Context) {
	h.move(c, +1)
}

// move swaps a menu item's position with its immediate sibling in direction
// dir (-1 up, +1 down). The swap is two independent single-row updates, not a
// transaction; after both, the full collection is re-read so the response
// reflects what the store actually holds. A partial failure therefore shows
// up on the next read rather than being rolled back. Moving the first item up
// or the last item down is a no-op, not an error.
func (h *MenuHandler) move(c *gin.Context, dir int) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Geçersiz ID"})
		return
	}
	var item models.MenuItem
	if err := database.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Menü öğesi bulunamadı"})
		return
	}

	items, err := loadMenuItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Menü yüklenemedi")})
		return
	}

	siblings := models.SiblingsOf(items, item.ParentID)
	idx := models.SiblingIndex(siblings, item.ID)
	swap := idx + dir
	if idx < 0 || swap < 0 || swap >= len(siblings) {
		// Already at the edge of its group: nothing to do.
		c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
		return
	}
	neighbor := siblings[swap]

	if err := database.DB.Model(&models.MenuItem{}).Where("id = ?", item.ID).
		Update("position", neighbor.Position).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Sıralama güncellenemedi")})
		return
	}
	if err := database.DB.Model(&models.MenuItem{}).Where("id = ?", neighbor.ID).
		Update("position", item.Position).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Sıralama güncellenemedi")})
		return
	}

	// Read-after-write: never patch the in-memory list.
	items, err = loadMenuItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Menü yüklenemedi")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Sıralama güncellendi", "data": items})
}
