package db

import "gorm.io/gorm"

func strPtr(s string) *string { return &s }

func intPtr(v int) *int { return &v }

// Seed 为空表填充初始数据：目录分类、头部菜单、CMS 页面、
// 首页区块、示例商品和作品集。每张表只在为空时填充，
// 避免进程重启覆盖管理员的修改。
func Seed(gdb *gorm.DB) error {
	if err := seedCategories(gdb); err != nil {
		return err
	}
	if err := seedMenu(gdb); err != nil {
		return err
	}
	if err := seedPages(gdb); err != nil {
		return err
	}
	if err := seedBlocks(gdb); err != nil {
		return err
	}
	if err := seedProducts(gdb); err != nil {
		return err
	}
	return seedPortfolio(gdb)
}

func tableEmpty(gdb *gorm.DB, model interface{}) (bool, error) {
	var count int64
	if err := gdb.Model(model).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func seedCategories(gdb *gorm.DB) error {
	empty, err := tableEmpty(gdb, &Category{})
	if err != nil || !empty {
		return err
	}

	categories := []Category{
		{Slug: "rotating-heads", Title: "Вращающиеся головы", SortOrder: 10},
		{Slug: "led-fixtures", Title: "Светодиодные прожекторы", SortOrder: 20},
		{Slug: "theatre", Title: "Театральный свет", SortOrder: 30},
		{Slug: "followspots", Title: "Прожекторы следящего света", SortOrder: 40},
		{Slug: "blinders-strobes", Title: "Блайндеры и стробоскопы", SortOrder: 50},
		{Slug: "sfx", Title: "Генераторы спецэффектов", SortOrder: 60},
		{Slug: "consoles", Title: "Пульты управления", SortOrder: 70},
		{Slug: "signal-distribution", Title: "Распределение сигнала", SortOrder: 80},
		{Slug: "cables-connectors", Title: "Кабель и разъемы", SortOrder: 90},
		{Slug: "clamps", Title: "Струбцины", SortOrder: 100},
	}
	return gdb.Create(&categories).Error
}

func seedMenu(gdb *gorm.DB) error {
	empty, err := tableEmpty(gdb, &MenuItem{})
	if err != nil || !empty {
		return err
	}

	menu := []MenuItem{
		{Label: "Каталог", Href: "/catalog", SortOrder: 10, IsEnabled: true},
		{Label: "О нас", Href: "/about", SortOrder: 20, IsEnabled: true},
		{Label: "Сервисный центр", Href: "/service", SortOrder: 30, IsEnabled: true},
		{Label: "Портфолио", Href: "/portfolio", SortOrder: 40, IsEnabled: true},
		{Label: "Госзакупки 44-ФЗ и 223-ФЗ", Href: "/procurement", SortOrder: 50, IsEnabled: true},
		{Label: "Контакты", Href: "/contacts", SortOrder: 60, IsEnabled: true},
	}
	return gdb.Create(&menu).Error
}

func seedPages(gdb *gorm.DB) error {
	empty, err := tableEmpty(gdb, &SitePage{})
	if err != nil || !empty {
		return err
	}

	pages := []SitePage{
		{
			Slug:        "about",
			Title:       "О нас",
			ContentMd:   "## BlackTechLight\n\nПрофессиональное световое и звуковое оборудование.\n\n- Подбор под ТЗ\n- Документы и гарантия\n- Быстрый КП\n",
			IsPublished: true,
		},
		{
			Slug:        "service",
			Title:       "Сервисный центр",
			ContentMd:   "## Сервисный центр\n\nДиагностика, ремонт, обслуживание, консультации.\n",
			IsPublished: true,
		},
		{
			Slug:        "procurement",
			Title:       "Госзакупки 44-ФЗ и 223-ФЗ",
			ContentMd:   "## Госзакупки 44-ФЗ и 223-ФЗ\n\nРаботаем с учреждениями: подбор, КП, эквиваленты и документы.\n\n- Помощь с ТЗ\n- Подбор аналогов\n- Закрывающие документы\n",
			IsPublished: true,
		},
		{
			Slug:        "contacts",
			Title:       "Контакты",
			ContentMd:   "## Контакты\n\nТелефон: +7 XXX XXX-XX-XX\n\nTelegram: @blacktechlight\n\nEmail: info@blacktechlight.ru\n",
			IsPublished: true,
		},
	}
	return gdb.Create(&pages).Error
}

func seedBlocks(gdb *gorm.DB) error {
	empty, err := tableEmpty(gdb, &HomeBlock{})
	if err != nil || !empty {
		return err
	}

	blocks := []HomeBlock{
		{
			Key:       BlockKeyHero,
			Title:     "BlackTechLight",
			Subtitle:  strPtr("Световое и звуковое оборудование. Подбор, поставка, сопровождение."),
			SortOrder: 10,
			IsEnabled: true,
		},
		{
			Key:       BlockKeyCatalog,
			Title:     "Каталог",
			Subtitle:  strPtr("Вращающиеся головы, прожекторы, пульты и коммутация."),
			SortOrder: 20,
			IsEnabled: true,
		},
		{
			Key:       BlockKeyProcurement,
			Title:     "Госзакупки 44-ФЗ и 223-ФЗ",
			Subtitle:  strPtr("Подбор под ТЗ, КП, эквиваленты и документы."),
			SortOrder: 30,
			IsEnabled: true,
		},
		{
			Key:       BlockKeyAbout,
			Title:     "О нас",
			Subtitle:  strPtr("Поставка, консультации, документация и сопровождение."),
			SortOrder: 40,
			IsEnabled: true,
		},
		{
			Key:       BlockKeyService,
			Title:     "Сервисный центр",
			Subtitle:  strPtr("Диагностика, ремонт и обслуживание."),
			SortOrder: 50,
			IsEnabled: true,
		},
		{
			Key:       BlockKeyPortfolio,
			Title:     "Портфолио",
			Subtitle:  strPtr("Примеры поставок и реализованных проектов."),
			SortOrder: 60,
			IsEnabled: true,
		},
	}
	return gdb.Create(&blocks).Error
}

func seedProducts(gdb *gorm.DB) error {
	empty, err := tableEmpty(gdb, &Product{})
	if err != nil || !empty {
		return err
	}

	var catRot, catLed, catTheatre Category
	if err := gdb.Where("slug = ?", "rotating-heads").First(&catRot).Error; err != nil {
		return err
	}
	if err := gdb.Where("slug = ?", "led-fixtures").First(&catLed).Error; err != nil {
		return err
	}
	if err := gdb.Where("slug = ?", "theatre").First(&catTheatre).Error; err != nil {
		return err
	}

	products := []Product{
		{
			Slug:             "beam-260",
			Title:            "BEAM 260",
			Brand:            "BlackTechLight",
			CategoryID:       catRot.ID,
			Price:            intPtr(129900),
			Availability:     "Под заказ",
			Short:            "Компактная лучевая голова для небольших и средних площадок.",
			DescriptionMd:    "Подходит для клубов, ДК и небольших сцен. Яркий луч, быстрые движения, хороший набор базовых эффектов.",
			FeaturedInSearch: true,
			SearchKeywords:   "beam,луч,голова,260,moving head",
		},
		{
			Slug:             "wash-7x40",
			Title:            "WASH 7x40",
			Brand:            "BlackTechLight",
			CategoryID:       catLed.ID,
			Price:            nil,
			Availability:     "По запросу",
			Short:            "Мощный LED wash с широкой заливкой и ровным полем.",
			DescriptionMd:    "Для заливки сцены и архитектурной подсветки. Ровная заливка, удобное управление, хорошо работает в комплектах.",
			FeaturedInSearch: true,
			SearchKeywords:   "wash,заливка,led,7x40",
		},
		{
			Slug:             "profile-300",
			Title:            "PROFILE 300",
			Brand:            "BlackTechLight",
			CategoryID:       catTheatre.ID,
			Price:            intPtr(219900),
			Availability:     "В наличии",
			Short:            "Профильный прожектор: резкость, гобо, шторки.",
			DescriptionMd:    "Театр/ТВ/сцена: чёткая оптика и аккуратная геометрия луча. Удобно для постановочного света.",
			FeaturedInSearch: false,
			SearchKeywords:   "profile,профиль,театр,gobo,300",
		},
	}
	return gdb.Create(&products).Error
}

func seedPortfolio(gdb *gorm.DB) error {
	empty, err := tableEmpty(gdb, &PortfolioProject{})
	if err != nil || !empty {
		return err
	}

	projects := []PortfolioProject{
		{
			Slug:        "dk-energetik",
			Title:       "ДК «Энергетик»",
			City:        "Казань",
			Year:        2024,
			Summary:     "Комплект постановочного света для большой сцены: головы, профили, пульт.",
			SortOrder:   10,
			IsPublished: true,
		},
		{
			Slug:        "club-volna",
			Title:       "Клуб «Волна»",
			City:        "Санкт-Петербург",
			Year:        2023,
			Summary:     "Лучевые головы и стробоскопы с коммутацией под ключ.",
			SortOrder:   20,
			IsPublished: true,
		},
	}
	return gdb.Create(&projects).Error
}
