package database

import (
	"fmt"
	"log"

	"atolye/config"
	"atolye/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the MySQL connection, migrates the schema and seeds the store
// with its initial admin account, navigation, categories and settings.
func Init(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("veritabanına bağlanılamadı: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Category{},
		&models.Collection{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderNotification{},
		&models.PageContent{},
		&models.Setting{},
		&models.Favorite{},
		&models.PasswordReset{},
	); err != nil {
		return err
	}

	if err := seed(cfg); err != nil {
		return err
	}

	log.Println("veritabanı hazır")
	return nil
}

// seed fills empty tables with the store's initial data. Each block only runs
// when its table is empty, so reruns are harmless.
func seed(cfg *config.Config) error {
	// Bootstrap admin account.
	var adminCount int64
	DB.Model(&models.User{}).Where("is_admin = ?", true).Count(&adminCount)
	if adminCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			Username: cfg.Admin.Username,
			Password: string(hashed),
			Email:    cfg.Admin.NotifyEmail,
			IsAdmin:  true,
			Status:   models.UserStatusActive,
		}
		if err := DB.Create(&admin).Error; err != nil {
			return err
		}
		log.Printf("yönetici hesabı oluşturuldu: %s (şifreyi ilk girişte değiştirin)", admin.Username)
	}

	// Default navigation, positions spaced by 10.
	var menuCount int64
	DB.Model(&models.MenuItem{}).Count(&menuCount)
	if menuCount == 0 {
		items := []models.MenuItem{
			{Name: "Anasayfa", Link: "/", Position: 10, IsActive: true},
			{Name: "Ürünler", Link: "/urunler", Position: 20, IsActive: true},
			{Name: "Koleksiyonlar", Link: "/koleksiyonlar", Position: 30, IsActive: true},
			{Name: "Hakkımızda", Link: "/hakkimizda", Position: 40, IsActive: true},
			{Name: "İletişim", Link: "/iletisim", Position: 50, IsActive: true},
		}
		_ = DB.Create(&items).Error
	}

	// Default product categories.
	var catCount int64
	DB.Model(&models.Category{}).Count(&catCount)
	if catCount == 0 {
		cats := []models.Category{
			{Name: "Omuz Çantası", Slug: "omuz-cantasi", SortOrder: 10},
			{Name: "El Çantası", Slug: "el-cantasi", SortOrder: 20},
			{Name: "Sırt Çantası", Slug: "sirt-cantasi", SortOrder: 30},
			{Name: "Bez Çanta", Slug: "bez-canta", SortOrder: 40},
			{Name: "Cüzdan & Aksesuar", Slug: "cuzdan-aksesuar", SortOrder: 50},
		}
		_ = DB.Create(&cats).Error
	}

	// Starter page content so /hakkimizda and /iletisim render on first run.
	var pageCount int64
	DB.Model(&models.PageContent{}).Count(&pageCount)
	if pageCount == 0 {
		pages := []models.PageContent{
			{PageKey: "about", FieldKey: "intro", Content: "<p>El yapımı çantalarımızla tanışın.</p>"},
			{PageKey: "contact", FieldKey: "info", Content: "<p>Bize aşağıdaki kanallardan ulaşabilirsiniz.</p>"},
		}
		_ = DB.Create(&pages).Error
	}

	// Store settings read by checkout and the storefront footer.
	var settingCount int64
	DB.Model(&models.Setting{}).Count(&settingCount)
	if settingCount == 0 {
		settings := []models.Setting{
			{Key: models.SettingStoreName, Value: "Atölye Çanta"},
			{Key: models.SettingPhone, Value: ""},
			{Key: models.SettingEmail, Value: ""},
			{Key: models.SettingAddress, Value: ""},
			{Key: models.SettingInstagram, Value: ""},
			{Key: models.SettingWhatsapp, Value: ""},
			{Key: models.SettingShippingFee, Value: "49.90"},
			{Key: models.SettingFreeShippingLimit, Value: "750"},
		}
		_ = DB.Create(&settings).Error
	}

	return nil
}

// GetDB returns the shared connection.
func GetDB() *gorm.DB {
	return DB
}
