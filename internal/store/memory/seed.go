package memory

import (
	"time"

	"github.com/udnewsupdate/news-site/internal/store"
)

// seed loads the initial records the site starts with after every restart.
func (s *Store) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := []store.NewCategory{
		{Name: "การเมือง", Slug: "politics", Color: "blue"},
		{Name: "เศรษฐกิจ", Slug: "economy", Color: "yellow"},
		{Name: "กีฬา", Slug: "sports", Color: "green"},
		{Name: "เทคโนโลยี", Slug: "technology", Color: "purple"},
		{Name: "บันเทิง", Slug: "entertainment", Color: "pink"},
		{Name: "สุขภาพ", Slug: "health", Color: "red"},
		{Name: "สิ่งแวดล้อม", Slug: "environment", Color: "emerald"},
	}
	for _, in := range categories {
		s.categorySeq++
		c := store.Category{ID: s.categorySeq, Name: in.Name, Slug: in.Slug, Color: in.Color}
		s.categories[c.ID] = c
		s.categoryOrder = append(s.categoryOrder, c.ID)
	}

	now := s.now()
	articles := []store.Article{
		{
			Title:       "รัฐบาลเร่งผลักดันนโยบายใหม่ กระตุ้นเศรษฐกิจหลังโควิด-19",
			Slug:        "government-economic-policy-post-covid",
			Excerpt:     "นายกรัฐมนตรีเปิดเผยแผนการกระตุ้นเศรษฐกิจระยะใหม่ มูลค่ากว่า 2 แสนล้านบาท เพื่อฟื้นฟูเศรษฐกิจของประเทศหลังวิกฤติโควิด-19",
			Content:     "นายกรัฐมนตรีเปิดเผยแผนการกระตุ้นเศรษฐกิจระยะใหม่ มูลค่ากว่า 2 แสนล้านบาท เพื่อฟื้นฟูเศรษฐกิจของประเทศหลังวิกฤติโควิด-19 โดยเน้นการสร้างงาน การลงทุนโครงสร้างพื้นฐาน และการพัฒนาเทคโนโลยีดิจิทัล แผนดังกล่าวคาดว่าจะช่วยสร้างงานใหม่มากกว่า 500,000 ตำแหน่ง และเพิ่มอัตราการเติบโตทางเศรษฐกิจของประเทศอย่างมีนัยสำคัญ",
			ImageURL:    ptr("https://images.unsplash.com/photo-1557804506-669a67965ba0?ixlib=rb-4.0.3&auto=format&fit=crop&w=1200&h=600"),
			CategoryID:  ptr(1),
			Author:      "ทีมข่าวการเมือง UDNewsUpdate",
			ReadTime:    5,
			IsBreaking:  true,
			IsFeatured:  true,
			PublishedAt: now.Add(-2 * time.Hour),
			Views:       15420,
		},
		{
			Title:       "บริษัทไทยพัฒนา AI ใหม่ แข่งขันระดับโลก",
			Slug:        "thai-company-develops-ai-global-competition",
			Excerpt:     "สตาร์ทอัพไทยเปิดตัวระบบปัญญาประดิษฐ์ที่สามารถวิเคราะห์ข้อมูลได้รวดเร็วกว่าเดิม 10 เท่า",
			Content:     "สตาร์ทอัพไทยชื่อดังเปิดตัวระบบปัญญาประดิษฐ์รุ่นใหม่ที่สามารถวิเคราะห์ข้อมูลขนาดใหญ่ได้รวดเร็วกว่าเดิม 10 เท่า โดยใช้เทคโนโลยี Machine Learning ที่พัฒนาขึ้นเอง ซึ่งได้รับการลงทุนจากกองทุนต่างชาติมูลค่า 500 ล้านบาท คาดว่าจะเป็นตัวเปลี่ยนเกมในอุตสาหกรรมเทคโนโลยีของภูมิภาค",
			ImageURL:    ptr("https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300"),
			CategoryID:  ptr(4),
			Author:      "นักข่าวเทคโนโลยี",
			ReadTime:    3,
			PublishedAt: now.Add(-1 * time.Hour),
			Views:       8930,
		},
		{
			Title:       "ทีมชาติไทยเตรียมลุยฟุตบอลโลก 2026",
			Slug:        "thailand-national-team-world-cup-2026",
			Excerpt:     "สมาคมฟุตบอลฯ เผยแผนพัฒนาทีมชาติสู่รอบสุดท้ายฟุตบอลโลก พร้อมเปิดตัวโค้ชใหม่",
			Content:     "สมาคมฟุตบอลแห่งประเทศไทยเปิดเผยแผนการพัฒนาทีมชาติไทยเพื่อเข้าสู่รอบสุดท้ายของฟุตบอลโลก 2026 โดยได้แต่งตั้งโค้ชชาวต่างชาติที่มีประสบการณ์สูงมาเป็นหัวหน้าผู้ฝึกสอน พร้อมทั้งเตรียมจัดตั้งสถาบันฟุตบอลเพื่อพัฒนานักเตะรุ่นเยาว์อย่างเป็นระบบ",
			ImageURL:    ptr("https://images.unsplash.com/photo-1431324155629-1a6deb1dec8d?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300"),
			CategoryID:  ptr(3),
			Author:      "นักข่าวกีฬา",
			ReadTime:    4,
			PublishedAt: now.Add(-3 * time.Hour),
			Views:       12850,
		},
		{
			Title:       "หนังไทยคว้ารางวัลเทศกาลหนังนานาชาติ",
			Slug:        "thai-movie-wins-international-film-festival",
			Excerpt:     "ผลงานของผู้กำกับไทยได้รับการยกย่องในเวทีโลก สร้างชื่อเสียงให้อุตสาหกรรมศิลปะไทย",
			Content:     "ภาพยนตร์ไทยเรื่องล่าสุดของผู้กำกับชื่อดังได้รับรางวัลใหญ่จากเทศกาลหนังนานาชาติที่มีชื่อเสียง โดยได้รับการยกย่องจากคณะกรรมการว่าเป็นผลงานที่สะท้อนวัฒนธรรมไทยได้อย่างลึกซึ้ง ซึ่งเป็นการยืนยันศักยภาพของอุตสาหกรรมภาพยนตร์ไทยในเวทีโลก",
			ImageURL:    ptr("https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300"),
			CategoryID:  ptr(5),
			Author:      "นักข่าวบันเทิง",
			ReadTime:    3,
			PublishedAt: now.Add(-5 * time.Hour),
			Views:       9630,
		},
		{
			Title:       "ตลาดหุ้นไทยฟื้นตัวแรง ทุบสถิติใหม่",
			Slug:        "thai-stock-market-recovery-new-record",
			Excerpt:     "ดัชนี SET ปิดที่ระดับสูงสุดในรอบ 3 เดือน หลังนักลงทุนต่างชาติกลับมาซื้อ",
			Content:     "ตลาดหุ้นไทยปิดการซื้อขายวันนี้ด้วยดัชนี SET ที่ระดับ 1,685.24 จุด เพิ่มขึ้น 18.52 จุด หรือ 1.11% ซึ่งเป็นระดับสูงสุดในรอบ 3 เดือน โดยมีปัจจัยหนุนจากการกลับมาซื้อของนักลงทุนต่างชาติ และความเชื่อมั่นต่อนโยบายเศรษฐกิจของรัฐบาลใหม่",
			ImageURL:    ptr("https://images.unsplash.com/photo-1554774853-719586f82d77?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300"),
			CategoryID:  ptr(2),
			Author:      "นักข่าวเศรษฐกิจ",
			ReadTime:    4,
			PublishedAt: now.Add(-6 * time.Hour),
			Views:       11420,
		},
		{
			Title:       "นักวิทยาศาสตร์ไทยค้นพบสารใหม่ต้านมะเร็ง",
			Slug:        "thai-scientists-discover-anti-cancer-compound",
			Excerpt:     "ทีมนักวิจัยจากมหาวิทยาลัยชั้นนำค้นพบสารสกัดจากพืชไทยที่มีประสิทธิภาพต้านเซลล์มะเร็ง",
			Content:     "ทีมนักวิจัยจากมหาวิทยาลัยชั้นนำของประเทศได้ค้นพบสารสกัดจากพืชสมุนไพรไทยที่มีประสิทธิภาพในการต้านเซลล์มะเร็ง โดยการทดลองในห้องปฏิบัติการพบว่าสามารถยับยั้งการเจริญเติบโตของเซลล์มะเร็งได้ถึง 85% ซึ่งเป็นความหวังใหม่สำหรับการพัฒนายาต้านมะเร็งในอนาคต",
			ImageURL:    ptr("https://images.unsplash.com/photo-1559757148-5c350d0d3c56?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300"),
			CategoryID:  ptr(6),
			Author:      "นักข่าวสุขภาพ",
			ReadTime:    5,
			IsBreaking:  true,
			PublishedAt: now.Add(-4 * time.Hour),
			Views:       7890,
		},
	}
	for _, a := range articles {
		s.articleSeq++
		a.ID = s.articleSeq
		s.articles[a.ID] = a
		s.articleOrder = append(s.articleOrder, a.ID)
	}
}

func ptr[T any](v T) *T { return &v }
