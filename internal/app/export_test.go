package app

var WatchRoots = watchRoots
