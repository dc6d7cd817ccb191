package portal

import "omniportal/internal/gateway/entity"

const lunaAvatar = "https://picsum.photos/400/400?random=10"

func seedProfile() entity.UserProfile {
	return entity.UserProfile{
		Name:     "Luna",
		Title:    "超级个体 & AI 共创者",
		Location: "中国 · 上海",
		Intro:    "致力于将艺术审美与前沿科技结合的创造者。擅长用 AI 放大创意半径，从抽象概念到落地产品的全链路闭环。 #飞书文档_核心交互设计 #EtherLand_视觉合伙人 #OmniPortal_独立开发 #元宇宙地产_视觉构建",
		Tags:     []string{},
		AllianceAchievements: []entity.AllianceAchievement{
			{ID: "1", Title: "神奇学校 · 觉察系", Detail: "高维智慧与内在工程 - 优秀毕业生", Year: "2023", IconName: "School", Level: "Master"},
			{ID: "2", Title: "Omni Yard · 静安", Detail: "城市更新项目共建人", Year: "2024", IconName: "Investment", Level: "L2 Investor"},
			{ID: "3", Title: "神奇联盟 · 社区贡献", Detail: "年度最活跃连接者", Year: "2023", IconName: "Award", Level: "Top 1%"},
		},
		ZoneOfGenius: entity.ZoneOfGenius{
			Enjoy: []string{
				"将抽象的灵感、梦境或直觉转化为可视化的现实",
				"在混乱的信息流中寻找秩序与美感的平衡",
				"与高维智慧进行深度的意识链接与对话",
			},
			Effortless: []string{
				"敏锐捕捉稍纵即逝的审美趋势与视觉通感",
				"跨越学科边界，快速整合资源并建立系统",
				"利用 AI 工具将 0 到 1 的原型搭建速度提升十倍",
			},
		},
		SkillStack: []entity.SkillCategory{
			{
				Category: "沉浸创造 · Creative Flow",
				IconName: "Palette",
				Color:    "text-pink-500",
				Bg:       "bg-pink-50",
				Skills:   []string{"深夜写代码的心流", "周末下午的油画创作", "搭建 Notion 自动化系统", "打磨像素级 UI 细节"},
			},
			{
				Category: "感官探索 · Sensory",
				IconName: "Activity",
				Color:    "text-emerald-500",
				Bg:       "bg-emerald-50",
				Skills:   []string{"探店上海法租界老洋房", "胶片摄影捕捉光影", "收集小众木质调香水", "手冲咖啡的仪式感"},
			},
			{
				Category: "高能时刻 · High Energy",
				IconName: "Cpu",
				Color:    "text-indigo-600",
				Bg:       "bg-indigo-50",
				Skills:   []string{"解决复杂 Bug 的瞬间", "CrossFit 后的力竭感", "与创始人深度脑暴", "产品上线的发布时刻"},
			},
			{
				Category: "深度连接 · Connection",
				IconName: "Brain",
				Color:    "text-purple-600",
				Bg:       "bg-purple-50",
				Skills:   []string{"组织 10 人内的私董会", "帮助他人厘清商业模式", "深度阅读哲学与心理学", "撰写长文复盘"},
			},
		},
	}
}

func seedProjects() []entity.Project {
	return []entity.Project{
		{
			ID:          "1",
			Title:       "AI 沉浸式五感疗愈展",
			Description: "在西岸美术馆打造一场结合生成式 AI 视觉与 432Hz 疗愈声频的沉浸式体验。旨在通过科技手段，快速引导都市人进入 Theta 波深度放松状态。",
			Progress:    45,
			RolesNeeded: []string{"生成式艺术家 (AIGC)", "音疗师", "空间交互设计"},
			DetailedRoles: []entity.ProjectRole{
				{ID: "r1", Title: "生成式艺术家 (AIGC)", RequiredTalents: []string{"Midjourney", "TouchDesigner", "视觉审美"}, EquityShare: 15},
				{ID: "r2", Title: "音疗师 (Sound Healing)", RequiredTalents: []string{"颂钵", "声学", "疗愈"}, EquityShare: 10},
				{ID: "r3", Title: "空间交互设计", RequiredTalents: []string{"Arduino", "空间设计", "用户体验"}, EquityShare: 12},
			},
			Image: "https://picsum.photos/400/200?random=881",
			Owner: entity.CurrentUserID,
		},
		{
			ID:          "2",
			Title:       "DAO 驱动的数字游民村落",
			Description: "位于安吉山谷的去中心化共居实验。不只是民宿，而是通过智能合约治理、Token 激励贡献的「创造者公社」。寻找懂 Web3 治理与乡村美学的共建者。",
			Progress:    72,
			RolesNeeded: []string{"社区架构师", "Web3 开发者", "乡村美学设计师"},
			DetailedRoles: []entity.ProjectRole{
				{ID: "r1", Title: "社区架构师", RequiredTalents: []string{"DAO治理", "社群运营", "规则设计"}, EquityShare: 20},
				{ID: "r2", Title: "Web3 全栈开发", RequiredTalents: []string{"Solidity", "React", "智能合约"}, EquityShare: 18},
				{ID: "r3", Title: "乡村空间设计师", RequiredTalents: []string{"建筑改造", "软装搭配", "自然美学"}, EquityShare: 15, IsFilled: true},
			},
			Image:         "https://picsum.photos/400/200?random=882",
			Owner:         "DAO",
			IsRecommended: true,
		},
		{
			ID:          "3",
			Title:       "「未来的书」交互式灵感库",
			Description: "打破线性阅读，构建一个基于 AI 知识图谱的非线性灵感获取产品。专为设计师与艺术家打造的第二大脑，让灵感连接像神经元一样流动。",
			Progress:    20,
			RolesNeeded: []string{"知识图谱工程师", "UI/UX 设计师", "内容策展人"},
			DetailedRoles: []entity.ProjectRole{
				{ID: "r1", Title: "知识图谱工程师", RequiredTalents: []string{"Neo4j", "NLP", "Python"}, EquityShare: 18},
				{ID: "r2", Title: "高级 UI/UX", RequiredTalents: []string{"Figma", "交互动效", "极简主义"}, EquityShare: 15},
				{ID: "r3", Title: "内容策展总编", RequiredTalents: []string{"审美", "编辑", "知识广度"}, EquityShare: 10},
			},
			Image: "https://picsum.photos/400/200?random=883",
			Owner: entity.CurrentUserID,
		},
	}
}

func seedTransactions() []entity.Transaction {
	return []entity.Transaction{
		{ID: "1", Name: "Omni 基地 (Bali) 分红", Date: "今天, 09:00", Amount: 150.00, Type: entity.TransactionIncome},
		{ID: "2", Name: "Omni Life 课程消费", Date: "昨天, 09:15", Amount: -500.00, Type: entity.TransactionExpense},
		{ID: "3", Name: "社区基金定投", Date: "2024年6月12日", Amount: -5000.00, Type: entity.TransactionInvestment},
	}
}

func seedFinance() entity.FinanceData {
	return entity.FinanceData{
		TotalAssets:          1425900,
		MonthlyPassiveIncome: 23250,
		MonthlyExpense:       8120.50,
		ActiveProjects: []entity.Project{
			{
				ID:             "101",
				Title:          "Omni Yard · 静安共创空间",
				Description:    "城市更新实体空间项目",
				Progress:       100,
				RolesNeeded:    []string{},
				Image:          "https://picsum.photos/400/200?random=101",
				UserEquity:     5.5,
				TotalDividends: 45000,
				Owner:          "Omni Alliance",
			},
			{
				ID:             "102",
				Title:          "AI 艺术策展小组",
				Description:    "数字化艺术画廊 DAO",
				Progress:       80,
				RolesNeeded:    []string{},
				Image:          "https://picsum.photos/400/200?random=102",
				UserEquity:     12,
				TotalDividends: 8600,
				Owner:          entity.CurrentUserID,
			},
			{
				ID:             "103",
				Title:          "神奇学校 · 线上平台",
				Description:    "知识付费与社群运营",
				Progress:       92,
				RolesNeeded:    []string{},
				Image:          "https://picsum.photos/400/200?random=103",
				UserEquity:     2.0,
				TotalDividends: 1200,
				Owner:          "Omni Alliance",
			},
		},
	}
}

func seedOmniItems() []entity.OmniItem {
	return []entity.OmniItem{
		{
			ID:            "991",
			Type:          entity.OmniRWA,
			Title:         "Omni Bamboo · Bali",
			Subtitle:      "巴厘岛 · 乌布竹林共居基地",
			Price:         "12%",
			Unit:          "APY",
			Image:         "https://picsum.photos/400/300?random=991",
			Tag:           "实体资产",
			Avatars:       []string{lunaAvatar, "https://picsum.photos/100/100?random=310"},
			Description:   "Omni 社区首个众筹建立的海外基地。坐落于乌布（Ubud）的稻田与竹林之间，由知名竹建筑师设计。项目包含 12 间数字游民公寓和 1 个 300平米的开放式 Co-working Space。",
			APY:           "12%",
			MinInvestment: "1000 USDT",
			Benefits:      []string{"每年 7 天免费居住权", "餐饮服务 8 折", "季度运营分红"},
		},
		{
			ID:            "992",
			Type:          entity.OmniRWA,
			Title:         "Lisbon Nomad Hub",
			Subtitle:      "葡萄牙 · 里斯本老城改造",
			Price:         "8.5%",
			Unit:          "APY",
			Image:         "https://picsum.photos/400/300?random=992",
			Tag:           "实体资产",
			Avatars:       []string{"https://picsum.photos/100/100?random=311"},
			Description:   "位于里斯本阿尔法玛（Alfama）区的百年老建筑改造项目。我们将这座废弃的修道院改造为集居住、办公、Web3 孵化器于一体的游民中心。不仅仅是房产，更是通往欧洲创投圈的物理入口。",
			APY:           "8.5%",
			MinInvestment: "5000 USDT",
			Benefits:      []string{"欧盟创业签证咨询通道", "每年 14 天免费居住", "本地活动优先权"},
		},
		{
			ID:          "609",
			Type:        entity.OmniEvents,
			Title:       "Private Angel Dinner",
			Subtitle:    "外滩 3 号 · 仅限 Omni OG",
			Date:        "周六, 19:00",
			Price:       "Token Gated",
			Image:       "https://picsum.photos/400/300?random=609",
			Tag:         "核心圈层",
			Dist:        "1.2 km",
			Avatars:     []string{"https://picsum.photos/100/100?random=290"},
			Description: "这是一场私密的闭门晚宴，仅邀请持有 Omni OG NFT 或资产等级 L3 以上的会员参加。我们将讨论 2025 年的加密市场趋势以及 Omni Life 的下一站选址。",
			TokenGate:   "Hold > 1000 $OMNI or OG NFT",
		},
		{
			ID:          "701",
			Type:        entity.OmniTravel,
			Title:       "冰岛 · 追逐太阳风的尽头",
			Subtitle:    "极光摄影 + 冰川徒步 7 日",
			Date:        "2024.11.15",
			Price:       "🪙 3,8000",
			Image:       "https://picsum.photos/400/300?random=701",
			Tag:         "全球旅居",
			Avatars:     []string{lunaAvatar, "https://picsum.photos/100/100?random=301", "https://picsum.photos/100/100?random=302"},
			Description: "这是一次前往世界尽头的探险。我们将避开游客区，深入冰岛南部的瓦特纳冰川腹地。行程亮点包含：\n1. 蓝冰洞探险与专业人像摄影\n2. 私人黑沙滩骑马体验\n3. 追逐极光的玻璃屋住宿\n4. 蓝湖温泉疗愈\n适合渴望在极致自然中找回敬畏感的旅人。全程配备专业向导与摄影师。",
		},
		{
			ID:          "401",
			Type:        entity.OmniGoods,
			Title:       "景德镇 · 侘寂手作陶具",
			Subtitle:    "孤品 · 像风留下的痕迹",
			Price:       "🪙 1,280",
			Image:       "https://picsum.photos/400/300?random=401",
			Tag:         "生活美学",
			Avatars:     []string{"https://picsum.photos/100/100?random=221"},
			Description: "每一件陶器都由景德镇青年陶艺家手工拉胚、修坯，并使用天然草木灰釉在柴窑中烧制 72 小时。由于火痕的不可控性，每一只杯子都是世间独一无二的孤品。表面保留了粗粝的颗粒感，手感温润厚实。在快节奏的都市生活中，这套茶具提醒我们回归当下的每一次呼吸与触碰。",
		},
		{
			ID:          "406",
			Type:        entity.OmniGoods,
			Title:       "独立设计 · 「流动的风」丝麻长袍",
			Subtitle:    "限量 10 件 · 天然草木染",
			Price:       "🪙 2,200",
			Image:       "https://picsum.photos/400/300?random=406",
			Tag:         "穿搭艺术",
			Avatars:     []string{"https://picsum.photos/100/100?random=226"},
			Description: "这是一件“会呼吸”的衣服。设计师选用了来自云贵的野生丝麻面料，通过手工植物染色呈现出类似晨雾般的灰蓝色调。剪裁上采用了零浪费的东方平面制版，没有任何拉链或扣子，完全依靠系带调整，包容任何体型的同时，让身体在行走间感受到风的流动。",
		},
		{
			ID:          "5",
			Type:        entity.OmniPlaces,
			Title:       "Omni 北海道滑雪度假屋",
			Subtitle:    "平台自营 · 二世谷 · 全球旅居",
			Price:       "🪙 3,500",
			Unit:        "/ 晚",
			Image:       "https://picsum.photos/400/300?random=15",
			Tag:         "全球旅居",
			Rating:      4.9,
			Avatars:     []string{lunaAvatar, "https://picsum.photos/100/100?random=208"},
			Description: "Omni Portal 全球旅居计划的第一站 —— 北海道二世谷（Niseko）。这栋由日本知名建筑师隈研吾团队设计的木质别墅，坐落在森林深处，拥有私汤温泉和能够直望羊蹄山的落地窗。作为平台自营物业，Omni 会员享有专属折扣和优先预订权。屋内配备全套智能家居和高速网络，不仅适合滑雪度假，更是数字游民完美的冬日办公基地。",
		},
		{
			ID:          "7",
			Type:        entity.OmniPlaces,
			Title:       "养云安缦 · 隐世之旅",
			Subtitle:    "会员专属：春日花艺疗愈",
			Price:       "🪙 4,500",
			Unit:        "/ 晚",
			Image:       "https://picsum.photos/400/300?random=17",
			Tag:         "会员特权",
			Rating:      5.0,
			Avatars:     []string{lunaAvatar, "https://picsum.photos/100/100?random=214"},
			Description: "这是一场专为 Omni 会员定制的周末隐世体验。下榻在上海市郊由明清古宅修复而成的养云安缦，感受楠木与石材构建的静谧气场。本次套餐特别包含了一场「春日花艺疗愈」工作坊，由知名花艺艺术家亲自指导，在古树下修剪花枝，体验植物带来的生命力与宁静。含双人早餐及一次 60 分钟的水疗体验。",
		},
		{
			ID:          "605",
			Type:        entity.OmniEvents,
			Title:       "大师级调香工作坊",
			Subtitle:    "法租界 · 寻找你的灵魂香气",
			Date:        "周日, 14:00",
			Price:       "🪙 980",
			Image:       "https://picsum.photos/400/300?random=605",
			Tag:         "美学沙龙",
			Dist:        "0.8 km",
			Avatars:     []string{"https://picsum.photos/100/100?random=227"},
			Description: "香气是灵魂的隐形衣裳。在这次工作坊中，我们将跟随法国格拉斯香水学院认证的调香师，学习识别 30 种珍稀天然香料。不只是简单的混合，而是通过冥想的方式，找到与你当下能量同频的气味，亲手调制一瓶 30ml 的专属香水。在法租界的百年洋房里，度过一个充满嗅觉惊喜的下午。",
		},
		{
			ID:          "801",
			Type:        entity.OmniInvestment,
			Title:       "AIGC 独角兽早期基金 II 期",
			Subtitle:    "硅谷头部 VC 领投 · 锁定未来",
			Price:       "🪙 50,000",
			Unit:        "/ 份 起",
			Image:       "https://picsum.photos/400/300?random=801",
			Tag:         "高科技投资",
			Avatars:     []string{lunaAvatar, "https://picsum.photos/100/100?random=305", "https://picsum.photos/100/100?random=306"},
			Description: "Omni Portal 与硅谷一线基金合作，为会员提供参与下一代 AI 基础设施的入场券。本期基金重点关注：\n1. 具身智能 (Embodied AI)\n2. AI 视频生成模型\n3. 垂直领域的 Agent 平台\n历史年化回报率 25%+，锁定期 3 年。作为 LP，你还将获得与被投企业创始人闭门交流的机会。",
		},
	}
}

func seedToolboxItems() []entity.ToolboxItem {
	return []entity.ToolboxItem{
		{ID: "tool-1", Category: entity.ToolboxTools, Name: "AI 智能助理", Desc: "自动回复与日程管理", IconName: "Bot", Features: []string{"智能邮件回复", "会议自动纪要", "行程冲突检测", "每日待办生成"}, ActionLabel: "启动助理"},
		{ID: "tool-2", Category: entity.ToolboxTools, Name: "合同生成器", Desc: "标准商业合作协议", IconName: "FileText", Features: []string{"KOL 合作协议模版", "股权代持协议", "服务外包合同", "电子签名集成"}, ActionLabel: "创建合同"},
		{ID: "tool-3", Category: entity.ToolboxTools, Name: "自动记账", Desc: "税务与流水追踪", IconName: "Calculator", Features: []string{"银行流水同步", "发票OCR识别", "税务自动预估", "利润表生成"}, ActionLabel: "查看报表"},
		{ID: "tool-4", Category: entity.ToolboxTools, Name: "品牌设计包", Desc: "Logo 与 视觉系统", IconName: "PenTool", Features: []string{"AI Logo 生成", "品牌色板推荐", "社媒封面模版", "名片设计导出"}, ActionLabel: "生成设计"},
		{ID: "think-1", Category: entity.ToolboxThinkTank, Name: "行业趋势雷达", Desc: "AI 驱动的市场洞察", IconName: "Radar", Features: []string{"Web3 赛道周报", "AIGC 应用案例库", "创投融资数据", "竞品动态监控"}},
		{ID: "think-2", Category: entity.ToolboxThinkTank, Name: "超级个体SOP库", Desc: "成熟的变现方法论", IconName: "BookOpen", Features: []string{"知识付费SOP", "私域运营SOP", "个人IP打造路径", "直播带货脚本"}},
		{ID: "think-3", Category: entity.ToolboxThinkTank, Name: "专家网络咨询", Desc: "按分钟付费的智囊团", IconName: "Users", Features: []string{"约见法律顾问", "税务筹划专家", "技术架构咨询", "品牌营销导师"}},
		{ID: "think-4", Category: entity.ToolboxThinkTank, Name: "全球游民指南", Desc: "签证/税务/居住攻略", IconName: "Globe", Features: []string{"数字游民签证政策", "联合办公地图", "生活成本对比", "当地社群入口"}},
	}
}

func seedAllianceTasks() []entity.AllianceTask {
	return []entity.AllianceTask{
		{
			ID:             "1",
			Title:          "Omni Portal 视觉系统升级",
			Description:    "为联盟核心产品设计一套全新的 UI Kit，包含组件库与设计规范。要求体现「高维审美」与「科技感」。",
			Reward:         5000,
			Type:           entity.TaskDesign,
			RequiredSkills: []string{"UI/UX", "Figma", "Design System"},
			Difficulty:     entity.DifficultyHard,
			Applicants:     12,
			IsMatched:      true,
		},
		{
			ID:             "2",
			Title:          "AI 行业日报内容策展",
			Description:    "负责筛选每日最新的 AI 行业资讯，并撰写简短的中文解读。需要对 AIGC 工具流有深度理解。",
			Reward:         800,
			Type:           entity.TaskContent,
			RequiredSkills: []string{"AIGC", "内容写作", "信息筛选"},
			Difficulty:     entity.DifficultyEasy,
			Applicants:     5,
			IsMatched:      true,
		},
		{
			ID:             "3",
			Title:          "Alliance Discord 社区运营",
			Description:    "负责维护 DAO 社区活跃度，组织每周一次的线上 AMA 活动。",
			Reward:         1500,
			Type:           entity.TaskOps,
			RequiredSkills: []string{"社区运营", "沟通能力", "活动策划"},
			Difficulty:     entity.DifficultyMedium,
			Applicants:     28,
			IsMatched:      false,
		},
	}
}
