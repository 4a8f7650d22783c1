// Package site holds the navigation bar of the blog.
package site

import "github.com/mchmarny/sitenav/pkg/nav"

// DefaultIcon is used by every entry of the blog menu.
const DefaultIcon = "pen-to-square"

// Navbar returns the blog's navigation bar.
func Navbar() *nav.Navbar {
	return nav.New(
		nav.Leaf("/"),
		nav.Group("博客", DefaultIcon, "/posts/",
			nav.Group("LangGraph", DefaultIcon, "langgraph/",
				nav.Item("LangGraph中的interrupt实现人机交互（HITL）", DefaultIcon, "langgraph_interrupt"),
			),
			nav.Item("Hertz 源码学习笔记", DefaultIcon, "hertz"),
			// nav.Group("苹果", DefaultIcon, "apple/",
			// 	nav.Item("苹果1", DefaultIcon, "1"),
			// 	nav.Item("苹果2", DefaultIcon, "2"),
			// 	nav.Leaf("3"),
			// 	nav.Leaf("4"),
			// ),
			// nav.Group("香蕉", DefaultIcon, "banana/",
			// 	nav.Item("香蕉 1", DefaultIcon, "1"),
			// 	nav.Item("香蕉 2", DefaultIcon, "2"),
			// 	nav.Leaf("3"),
			// 	nav.Leaf("4"),
			// ),
			// nav.Item("樱桃", DefaultIcon, "cherry"),
			// nav.Item("火龙果", DefaultIcon, "dragonfruit"),
			// nav.Leaf("tomato"),
			// nav.Leaf("strawberry"),
		),
	)
}
